package pipeline

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/opensaft/pkg/mesh"
	"github.com/taigrr/opensaft/pkg/vecf"
)

// chunkBounds splits [0, n) into up to runtime.GOMAXPROCS(0) contiguous
// spans for parallel processing.
func chunkBounds(n int) [][2]int {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := (n + workers - 1) / workers
	var bounds [][2]int
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		bounds = append(bounds, [2]int{start, end})
	}
	return bounds
}

// TransformPositionsInPlace maps every vertex position from grid space
// to world space via worldFromGrid, in parallel.
func TransformPositionsInPlace(m *mesh.TriangleMesh, worldFromGrid func(vecf.Vec3) vecf.Vec3) {
	var eg errgroup.Group
	for _, b := range chunkBounds(len(m.Positions)) {
		b := b
		eg.Go(func() error {
			for i := b[0]; i < b[1]; i++ {
				m.Positions[i] = worldFromGrid(m.Positions[i])
			}
			return nil
		})
	}
	_ = eg.Wait()
}

// GatherColorsInPlace samples colorWorld at every (already
// world-space) vertex position and stores the result in m.Colors, in
// parallel.
func GatherColorsInPlace(m *mesh.TriangleMesh, colorWorld func(vecf.Vec3) vecf.Vec3) {
	m.Colors = make([]vecf.Vec3, len(m.Positions))
	var eg errgroup.Group
	for _, b := range chunkBounds(len(m.Positions)) {
		b := b
		eg.Go(func() error {
			for i := b[0]; i < b[1]; i++ {
				m.Colors[i] = colorWorld(m.Positions[i])
			}
			return nil
		})
	}
	_ = eg.Wait()
}
