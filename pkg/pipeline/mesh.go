package pipeline

import (
	"github.com/taigrr/opensaft/pkg/compiler"
	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/grid"
	"github.com/taigrr/opensaft/pkg/interpreter"
	"github.com/taigrr/opensaft/pkg/marching"
	"github.com/taigrr/opensaft/pkg/mesh"
	"github.com/taigrr/opensaft/pkg/program"
	"github.com/taigrr/opensaft/pkg/sdf"
	"github.com/taigrr/opensaft/pkg/vecf"
)

// MeshFromSDFFunc samples sdWorld over a grid covering bb at resolution,
// polygonizes the zero level set, and colors the resulting vertices with
// colorWorld. sdWorld and colorWorld are both called concurrently from
// multiple goroutines and so must be safe for that.
func MeshFromSDFFunc(bb graph.BoundingBox, resolution [3]int, sdWorld func(vecf.Vec3) float32, colorWorld func(vecf.Vec3) vecf.Vec3) (*mesh.TriangleMesh, error) {
	// Only the x axis determines the world/grid scale; the other axes
	// use whatever resolution falls out of it against the box's size.
	worldFromGridScale := bb.Size().X / float32(resolution[0]-1)
	gridFromWorldScale := 1.0 / worldFromGridScale

	worldFromGrid := func(p vecf.Vec3) vecf.Vec3 {
		return p.Scale(worldFromGridScale).Add(bb.Min)
	}
	sdInGrid := func(p vecf.Vec3) sdf.ScalarDistance {
		return sdf.ScalarDistance(sdWorld(worldFromGrid(p)) * gridFromWorldScale)
	}

	size := grid.Index3{resolution[0], resolution[1], resolution[2]}
	g := grid.NewGrid3[sdf.ScalarDistance](size)
	g.SetTruncated(func(idx grid.Index3) sdf.ScalarDistance {
		p := vecf.Vec3{X: float32(idx[0]), Y: float32(idx[1]), Z: float32(idx[2])}
		return sdInGrid(p)
	}, 2.0)

	data := g.Data()
	if !data[len(data)/2].IsFinite() {
		return nil, compiler.ErrEvaluatedToNaN
	}

	result := marching.Polygonize(g)

	out := &mesh.TriangleMesh{
		Positions: result.Positions,
		Normals:   result.Normals,
		Indices:   result.Indices,
	}

	TransformPositionsInPlace(out, worldFromGrid)
	GatherColorsInPlace(out, colorWorld)

	return out, nil
}

// MeshFromSDFProgram meshes a compiled program over bb at resolution. A
// fresh interpreter context is created on every single distance/color
// sample, since a context carries mutable evaluation state and the
// samples run concurrently across goroutines.
func MeshFromSDFProgram(p program.Program, bb graph.BoundingBox, resolution [3]int) (*mesh.TriangleMesh, error) {
	dFunc := func(pos vecf.Vec3) float32 {
		ctx := interpreter.NewScalarContext(p)
		d, ok := interpreter.Interpret[sdf.ScalarDistance](ctx, pos)
		if !ok {
			return float32(sdf.ScalarInfinity())
		}
		return d.Distance()
	}
	colorFunc := func(pos vecf.Vec3) vecf.Vec3 {
		ctx := interpreter.NewRGBContext(p)
		d, ok := interpreter.Interpret[sdf.RGBDistance](ctx, pos)
		if !ok {
			return vecf.Vec3{}
		}
		return d.RGB
	}
	return MeshFromSDFFunc(bb, resolution, dFunc, colorFunc)
}

// MeshFromSDF meshes node, picking the bounding box and resolution from
// opt automatically.
func MeshFromSDF(g *graph.Graph, node graph.NodeID, opt MeshOptions) (*mesh.TriangleMesh, error) {
	bb, resolution := SDFBBAndResolution(g.BoundingBox(node), opt)
	p := compiler.Compile(g, node)
	return MeshFromSDFProgram(p, bb, resolution)
}

// SurfaceDistanceTo compiles node and evaluates its distance at pos.
func SurfaceDistanceTo(g *graph.Graph, node graph.NodeID, pos vecf.Vec3) float32 {
	p := compiler.Compile(g, node)
	ctx := interpreter.NewScalarContext(p)
	d := interpreter.InterpretUnchecked[sdf.ScalarDistance](ctx, pos)
	return d.Distance()
}
