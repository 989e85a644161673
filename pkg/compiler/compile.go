package compiler

import (
	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/program"
)

// minSmoothing is the smallest smoothing size the compiler will emit:
// below this, the smooth combinators' polynomial blend becomes
// numerically unstable.
const minSmoothing = 0.0001

// Compile linearizes the sub-tree rooted at root into a Program via a
// post-order walk: every node's children are compiled (and their
// opcodes/constants emitted) before the node's own opcode.
func Compile(g *graph.Graph, root graph.NodeID) program.Program {
	var p program.Program
	compileNode(g, root, &p, nil)
	p.Opcodes = append(p.Opcodes, program.OpEnd)
	return p
}

func compileNode(g *graph.Graph, root graph.NodeID, p *program.Program, path []graph.NodeID) {
	for _, id := range path {
		if id == root {
			panic("compiler: graph contains a cycle")
		}
	}
	path = append(path, root)

	w := constantWriter{constants: &p.Constants}
	emit := func(op program.Opcode) { p.Opcodes = append(p.Opcodes, op) }

	switch n := g.MustGet(root).(type) {
	case graph.Plane:
		emit(program.OpPlane)
		w.pushVec4(n.Plane)

	case graph.Sphere:
		emit(program.OpSphere)
		w.pushVec3(n.Center)
		w.pushF32(n.Radius)

	case graph.Capsule:
		if n.Points[0] == n.Points[1] {
			emit(program.OpSphere)
			w.pushVec3(n.Points[0])
		} else {
			emit(program.OpCapsule)
			w.pushVec3(n.Points[0])
			w.pushVec3(n.Points[1])
		}
		w.pushF32(n.Radius)

	case graph.RoundedCylinder:
		emit(program.OpRoundedCylinder)
		w.pushF32(n.CylinderRadius)
		w.pushF32(n.HalfHeight)
		w.pushF32(n.RoundingRadius)

	case graph.TaperedCapsule:
		emit(program.OpTaperedCapsule)
		w.pushVec3(n.Points[0])
		w.pushF32(n.Radii[0])
		w.pushVec3(n.Points[1])
		w.pushF32(n.Radii[1])

	case graph.Cone:
		emit(program.OpCone)
		w.pushF32(n.Radius)
		w.pushF32(n.Height)

	case graph.RoundedBox:
		emit(program.OpRoundedBox)
		w.pushVec3(n.HalfSize)
		w.pushF32(n.RoundingRadius)

	case graph.Torus:
		emit(program.OpTorus)
		w.pushF32(n.BigR)
		w.pushF32(n.SmallR)

	case graph.TorusSector:
		emit(program.OpTorusSector)
		w.pushF32(n.BigR)
		w.pushF32(n.SmallR)
		w.pushVec2(n.SinCosHalfAngle)

	case graph.BiconvexLens:
		emit(program.OpBiconvexLens)
		w.pushF32(n.LowerSagitta)
		w.pushF32(n.UpperSagitta)
		w.pushF32(n.Chord)

	case graph.MaterialNode:
		compileNode(g, n.Child, p, path)
		emit(program.OpMaterial)
		w.pushVec3(n.Material.RGB)

	case graph.Union:
		compileNode(g, n.LHS, p, path)
		compileNode(g, n.RHS, p, path)
		emit(program.OpUnion)

	case graph.UnionSmooth:
		compileNode(g, n.LHS, p, path)
		compileNode(g, n.RHS, p, path)
		emit(program.OpUnionSmooth)
		w.pushF32(clampSmoothing(n.Size))

	case graph.UnionMulti:
		for i, c := range n.Children {
			compileNode(g, c, p, path)
			if i > 0 {
				emit(program.OpUnion)
			}
		}

	case graph.UnionMultiSmooth:
		for i, c := range n.Children {
			compileNode(g, c, p, path)
			if i > 0 {
				emit(program.OpUnionSmooth)
				w.pushF32(clampSmoothing(n.Size))
			}
		}

	case graph.Subtract:
		compileNode(g, n.LHS, p, path)
		compileNode(g, n.RHS, p, path)
		emit(program.OpSubtract)

	case graph.SubtractSmooth:
		compileNode(g, n.LHS, p, path)
		compileNode(g, n.RHS, p, path)
		emit(program.OpSubtractSmooth)
		w.pushF32(clampSmoothing(n.Size))

	case graph.Intersect:
		compileNode(g, n.LHS, p, path)
		compileNode(g, n.RHS, p, path)
		emit(program.OpIntersect)

	case graph.IntersectSmooth:
		compileNode(g, n.LHS, p, path)
		compileNode(g, n.RHS, p, path)
		emit(program.OpIntersectSmooth)
		w.pushF32(clampSmoothing(n.Size))

	case graph.Translate:
		emit(program.OpPushTranslation)
		w.pushVec3(n.Translation.Negate())
		compileNode(g, n.Child, p, path)
		emit(program.OpPopTransform)

	case graph.Rotate:
		emit(program.OpPushRotation)
		w.pushVec4(quatToVec4(n.Rotation.Conjugate()))
		compileNode(g, n.Child, p, path)
		emit(program.OpPopTransform)

	case graph.ScaleNode:
		emit(program.OpPushScale)
		w.pushF32(1 / n.Scale)
		compileNode(g, n.Child, p, path)
		emit(program.OpPopScale)
		w.pushF32(n.Scale)

	case graph.SubGraph:
		// A nested graph gets its own fresh cycle-check path.
		compileNode(n.Graph, n.Root, p, nil)

	default:
		panic("compiler: unhandled node kind")
	}
}

func clampSmoothing(size float32) float32 {
	if size < minSmoothing {
		return minSmoothing
	}
	return size
}
