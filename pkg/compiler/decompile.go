package compiler

import (
	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/program"
	"github.com/taigrr/opensaft/pkg/vecf"
)

type transformKind int

const (
	transformTranslation transformKind = iota
	transformRotation
)

type transformEntry struct {
	kind        transformKind
	translation vecf.Vec3
	rotation    vecf.Quat
}

// Decompile reconstructs a Graph equivalent to the one that produced p.
// The reconstructed graph is not guaranteed to be identical to the
// original (canonicalizations performed at compile time, such as a
// coincident-endpoint Capsule becoming a Sphere, are not reversed) but
// recompiling it is guaranteed to produce byte-identical opcodes and
// constants.
func Decompile(p program.Program) (*graph.Graph, graph.NodeID, error) {
	g := graph.NewGraph()
	var stack []graph.NodeID
	var transformStack []transformEntry
	reader := constantReader{constants: p.Constants}
	hitEnd := false

	pop := func() (graph.NodeID, error) {
		if len(stack) == 0 {
			return 0, errBadStack("node stack underflow")
		}
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return id, nil
	}

	for _, op := range p.Opcodes {
		switch op {
		case program.OpPlane:
			v, err := reader.readVec4()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.Plane(v))

		case program.OpSphere:
			center, err := reader.readVec3()
			if err != nil {
				return nil, 0, err
			}
			radius, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.Sphere(center, radius))

		case program.OpCapsule:
			p0, err := reader.readVec3()
			if err != nil {
				return nil, 0, err
			}
			p1, err := reader.readVec3()
			if err != nil {
				return nil, 0, err
			}
			radius, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.Capsule([2]vecf.Vec3{p0, p1}, radius))

		case program.OpRoundedCylinder:
			cr, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			hh, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			rr, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.RoundedCylinder(cr, hh, rr))

		case program.OpTaperedCapsule:
			p0, err := reader.readVec3()
			if err != nil {
				return nil, 0, err
			}
			r0, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			p1, err := reader.readVec3()
			if err != nil {
				return nil, 0, err
			}
			r1, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.TaperedCapsule([2]vecf.Vec3{p0, p1}, [2]float32{r0, r1}))

		case program.OpCone:
			radius, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			height, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.Cone(radius, height))

		case program.OpRoundedBox:
			halfSize, err := reader.readVec3()
			if err != nil {
				return nil, 0, err
			}
			radius, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.RoundedBox(halfSize, radius))

		case program.OpTorus:
			bigR, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			smallR, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.Torus(bigR, smallR))

		case program.OpTorusSector:
			bigR, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			smallR, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			sinCos, err := reader.readVec2()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.RawTorusSector(bigR, smallR, sinCos))

		case program.OpBiconvexLens:
			lower, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			upper, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			chord, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.BiconvexLens(lower, upper, chord))

		case program.OpMaterial:
			child, err := pop()
			if err != nil {
				return nil, 0, err
			}
			rgb, err := reader.readVec3()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.OpRGB(child, rgb))

		case program.OpUnion, program.OpSubtract, program.OpIntersect:
			rhs, err := pop()
			if err != nil {
				return nil, 0, err
			}
			lhs, err := pop()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, applyCsg(g, op, lhs, rhs, 0))

		case program.OpUnionSmooth, program.OpSubtractSmooth, program.OpIntersectSmooth:
			rhs, err := pop()
			if err != nil {
				return nil, 0, err
			}
			lhs, err := pop()
			if err != nil {
				return nil, 0, err
			}
			size, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, applyCsg(g, op, lhs, rhs, size))

		case program.OpPushTranslation:
			t, err := reader.readVec3()
			if err != nil {
				return nil, 0, err
			}
			transformStack = append(transformStack, transformEntry{
				kind:        transformTranslation,
				translation: t.Negate(),
			})

		case program.OpPushRotation:
			q, err := reader.readQuat()
			if err != nil {
				return nil, 0, err
			}
			transformStack = append(transformStack, transformEntry{
				kind:     transformRotation,
				rotation: q.Conjugate(),
			})

		case program.OpPopTransform:
			child, err := pop()
			if err != nil {
				return nil, 0, err
			}
			if len(transformStack) == 0 {
				return nil, 0, errBadStack("transform stack underflow")
			}
			t := transformStack[len(transformStack)-1]
			transformStack = transformStack[:len(transformStack)-1]
			switch t.kind {
			case transformTranslation:
				stack = append(stack, g.OpTranslate(child, t.translation))
			case transformRotation:
				stack = append(stack, g.OpRotate(child, t.rotation))
			}

		case program.OpPushScale:
			if err := reader.skip(1); err != nil {
				return nil, 0, err
			}

		case program.OpPopScale:
			child, err := pop()
			if err != nil {
				return nil, 0, err
			}
			scale, err := reader.readF32()
			if err != nil {
				return nil, 0, err
			}
			stack = append(stack, g.OpScale(child, scale))

		case program.OpEnd:
			hitEnd = true

		default:
			return nil, 0, errBadProgram("unknown opcode")
		}

		if hitEnd {
			break
		}
	}

	if !hitEnd {
		return nil, 0, errBadProgram("missing End")
	}
	if len(stack) != 1 {
		return nil, 0, errBadStack("expected exactly one node on the stack")
	}
	if len(transformStack) != 0 {
		return nil, 0, errBadStack("dangling transform")
	}
	if !reader.atEnd() {
		return nil, 0, errBadProgram("unused constants")
	}

	return g, stack[0], nil
}

func applyCsg(g *graph.Graph, op program.Opcode, lhs, rhs graph.NodeID, size float32) graph.NodeID {
	switch op {
	case program.OpUnion:
		return g.OpUnion(lhs, rhs)
	case program.OpSubtract:
		return g.OpSubtract(lhs, rhs)
	case program.OpIntersect:
		return g.OpIntersect(lhs, rhs)
	case program.OpUnionSmooth:
		return g.OpUnionSmooth(lhs, rhs, size)
	case program.OpSubtractSmooth:
		return g.OpSubtractSmooth(lhs, rhs, size)
	case program.OpIntersectSmooth:
		return g.OpIntersectSmooth(lhs, rhs, size)
	default:
		panic("compiler: not a combinator opcode")
	}
}
