package pipeline

import (
	"fmt"
	"math"

	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/vecf"
)

func cbrt32(v float32) float32 {
	return float32(math.Cbrt(float64(v)))
}

func max3(a, b, c float32) float32 {
	return vecf.Max(a, vecf.Max(b, c))
}

func min3(a, b, c float32) float32 {
	return vecf.Min(a, vecf.Min(b, c))
}

// SDFBBAndResolution expands a tight bounding box by at least one grid
// cell on every side and picks a per-axis grid resolution, biased
// toward MeanResolution but clamped so no axis goes outside
// [MinResolution, MaxResolution] — with MinResolution taking priority
// over MaxResolution if the two would otherwise conflict (a very flat
// box would otherwise be clamped down to an unusably thin grid).
func SDFBBAndResolution(bb graph.BoundingBox, opt MeshOptions) (graph.BoundingBox, [3]int) {
	if !bb.IsFinite() {
		panic(fmt.Sprintf("pipeline: bad bounding box: %+v", bb))
	}
	if bb.Volume() <= 0 {
		panic(fmt.Sprintf("pipeline: bad bounding box: %+v", bb))
	}

	const gridPadding = 1.0

	gridFromWorldScale := opt.MeanResolution / cbrt32(bb.Volume())
	padding := gridPadding / gridFromWorldScale
	bb = bb.Expanded(vecf.Splat3(padding))

	gridFromWorldScale = opt.MeanResolution / cbrt32(bb.Volume())

	size := bb.Size()
	resolution := [3]float32{
		gridFromWorldScale * size.X,
		gridFromWorldScale * size.Y,
		gridFromWorldScale * size.Z,
	}

	maxSide := max3(resolution[0], resolution[1], resolution[2])
	maxFactor := float32(1)
	if maxSide > opt.MaxResolution {
		maxFactor = opt.MaxResolution / maxSide
	}

	minSide := min3(resolution[0], resolution[1], resolution[2])
	minFactor := float32(1)
	if minSide < opt.MinResolution {
		minFactor = opt.MinResolution / minSide
	}

	// The minimum overrules the maximum.
	factor := vecf.Max(minFactor, maxFactor)

	gridResolution := [3]int{
		int(math.Ceil(float64(factor * resolution[0]))),
		int(math.Ceil(float64(factor * resolution[1]))),
		int(math.Ceil(float64(factor * resolution[2]))),
	}

	return bb, gridResolution
}
