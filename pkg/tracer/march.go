package tracer

import (
	"github.com/taigrr/opensaft/pkg/compiler"
	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/interpreter"
	"github.com/taigrr/opensaft/pkg/program"
	"github.com/taigrr/opensaft/pkg/sdf"
	"github.com/taigrr/opensaft/pkg/vecf"
)

// March compiles the sub-tree rooted at root and sphere-traces ray
// against it, scanning t across tRange.
func March(g *graph.Graph, root graph.NodeID, ray vecf.Ray3, tRange [2]float32, opt Options) ClosestHit {
	p := compiler.Compile(g, root)
	return Trace(ToSDFunc(p), ray, tRange, opt)
}

// ToSDFunc adapts a compiled program to a plain distance function,
// reusing one interpreter Context across every call.
func ToSDFunc(p program.Program) func(vecf.Vec3) float32 {
	ctx := interpreter.NewScalarContext(p)
	return func(pos vecf.Vec3) float32 {
		d, ok := interpreter.Interpret[sdf.ScalarDistance](ctx, pos)
		if !ok {
			return 0
		}
		return d.Distance()
	}
}
