// Package grid stores SDF samples on a dense 3D lattice and fills them
// either exhaustively or by exploiting the Lipschitz-1 bound of a signed
// distance field to skip cells known not to need an exact evaluation.
package grid

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/opensaft/pkg/sdf"
	"github.com/taigrr/opensaft/pkg/vecf"
)

// Index3 addresses a single cell of a Grid3.
type Index3 [3]int

// Grid3 stores one T per cell of a [0,0,0]-[w-1,h-1,d-1] lattice, laid
// out with X fastest-varying so a whole row is contiguous.
type Grid3[T sdf.SignedDistance] struct {
	size Index3
	data []T
}

// NewGrid3 returns a grid of the given size with every cell zero-valued.
func NewGrid3[T sdf.SignedDistance](size Index3) *Grid3[T] {
	return &Grid3[T]{
		size: size,
		data: make([]T, size[0]*size[1]*size[2]),
	}
}

// Size returns the grid's dimensions.
func (g *Grid3[T]) Size() Index3 { return g.size }

// Data returns the flat, X-fastest backing slice.
func (g *Grid3[T]) Data() []T { return g.data }

func (g *Grid3[T]) index(p Index3) int {
	return p[0] + g.size[0]*(p[1]+g.size[1]*p[2])
}

// At returns the value at p. p must be within the grid.
func (g *Grid3[T]) At(p Index3) T { return g.data[g.index(p)] }

// Set assigns the value at p. p must be within the grid.
func (g *Grid3[T]) Set(p Index3, v T) { g.data[g.index(p)] = v }

// Fill sets every cell via f, evaluated in X-fastest order.
func (g *Grid3[T]) Fill(f func(Index3) T) {
	index := 0
	for z := 0; z < g.size[2]; z++ {
		for y := 0; y < g.size[1]; y++ {
			for x := 0; x < g.size[0]; x++ {
				g.data[index] = f(Index3{x, y, z})
				index++
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GradientClamped returns the central-difference distance gradient at
// p, clamping p one cell in from every edge so the neighbor reads stay
// in bounds.
func (g *Grid3[T]) GradientClamped(p Index3) vecf.Vec3 {
	cp := Index3{
		clampInt(p[0], 1, g.size[0]-2),
		clampInt(p[1], 1, g.size[1]-2),
		clampInt(p[2], 1, g.size[2]-2),
	}
	dx := g.At(Index3{cp[0] + 1, cp[1], cp[2]}).Distance() - g.At(Index3{cp[0] - 1, cp[1], cp[2]}).Distance()
	dy := g.At(Index3{cp[0], cp[1] + 1, cp[2]}).Distance() - g.At(Index3{cp[0], cp[1] - 1, cp[2]}).Distance()
	dz := g.At(Index3{cp[0], cp[1], cp[2] + 1}).Distance() - g.At(Index3{cp[0], cp[1], cp[2] - 1}).Distance()
	return vecf.V3(dx, dy, dz).Scale(0.5)
}

// FastGradient approximates the gradient with one-sided differences at
// the grid boundary instead of clamping, and skips the divide-by-2
// (callers normalize the result anyway). x, y, z, i are the cell's
// coordinates and its flat index; ys and zs are the Y and Z strides.
func (g *Grid3[T]) FastGradient(x, y, z, i, ys, zs int) vecf.Vec3 {
	sx, sy, sz := g.size[0], g.size[1], g.size[2]

	x1, x2 := i, i
	if x < sx-1 {
		x1 = i + 1
	}
	if x > 0 {
		x2 = i - 1
	}
	y1, y2 := i, i
	if y < sy-1 {
		y1 = i + ys
	}
	if y > 0 {
		y2 = i - ys
	}
	z1, z2 := i, i
	if z < sz-1 {
		z1 = i + zs
	}
	if z > 0 {
		z2 = i - zs
	}

	dx := g.data[x1].Distance() - g.data[x2].Distance()
	dy := g.data[y1].Distance() - g.data[y2].Distance()
	dz := g.data[z1].Distance() - g.data[z2].Distance()
	return vecf.V3(dx, dy, dz)
}

// setTruncatedSpan fills one X row, exploiting the field's Lipschitz-1
// bound: after evaluating a cell exactly, it keeps writing that same
// value for as many subsequent cells as the bound guarantees can't
// cross truncateDist, before evaluating again.
func setTruncatedSpan[T sdf.SignedDistance](xSlice []T, y, z int, f func(Index3) T, truncateDist float32) {
	w := len(xSlice)
	x := 0

	for x < w {
		distance := f(Index3{x, y, z})
		absDistance := distance.Distance()
		if absDistance < 0 {
			absDistance = -absDistance
		}

		xSlice[x] = distance
		x++

		distanceBound := absDistance - 1.0
		for distanceBound > truncateDist && x < w {
			xSlice[x] = distance
			x++
			distanceBound -= 1.0
		}
	}
}

// SetTruncatedSync fills every cell via f, exploiting the Lipschitz
// bound, running on the calling goroutine only.
func (g *Grid3[T]) SetTruncatedSync(f func(Index3) T, truncateDist float32) {
	w, h := g.size[0], g.size[1]
	for z := 0; z < g.size[2]; z++ {
		plane := g.data[z*w*h : (z+1)*w*h]
		for y := 0; y < h; y++ {
			setTruncatedSpan(plane[y*w:(y+1)*w], y, z, f, truncateDist)
		}
	}
}

// SetTruncated fills every cell via f, exploiting the Lipschitz bound,
// splitting the Z slabs into runtime.GOMAXPROCS(0) contiguous chunks so
// the goroutine count stays bounded regardless of grid depth.
func (g *Grid3[T]) SetTruncated(f func(Index3) T, truncateDist float32) {
	w, h, d := g.size[0], g.size[1], g.size[2]

	workers := runtime.GOMAXPROCS(0)
	if workers > d {
		workers = d
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := (d + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < d; start += chunkSize {
		end := start + chunkSize
		if end > d {
			end = d
		}
		start, end := start, end
		eg.Go(func() error {
			for z := start; z < end; z++ {
				plane := g.data[z*w*h : (z+1)*w*h]
				for y := 0; y < h; y++ {
					setTruncatedSpan(plane[y*w:(y+1)*w], y, z, f, truncateDist)
				}
			}
			return nil
		})
	}
	_ = eg.Wait()
}
