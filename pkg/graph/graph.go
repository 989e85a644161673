package graph

import (
	"github.com/taigrr/opensaft/pkg/sdf"
	"github.com/taigrr/opensaft/pkg/vecf"
)

// Graph is a set of Nodes addressed by NodeID, forming a DAG (cycles are
// a programmer error and will panic during compilation).
type Graph struct {
	nextID NodeID
	nodes  map[NodeID]Node
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{nodes: map[NodeID]Node{}}
}

func (g *Graph) create(n Node) NodeID {
	id := g.nextID
	g.nextID++
	if g.nodes == nil {
		g.nodes = map[NodeID]Node{}
	}
	g.nodes[id] = n
	return id
}

// Get returns the node with the given id, or false if it does not exist.
func (g *Graph) Get(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// MustGet returns the node with the given id, panicking if it does not
// exist. Every NodeID returned by this package's own constructors is
// always valid, so callers that only ever pass those through are safe.
func (g *Graph) MustGet(id NodeID) Node {
	n, ok := g.nodes[id]
	if !ok {
		panic("graph: unknown node id")
	}
	return n
}

// AddGraph embeds other as a single node rooted at root.
func (g *Graph) AddGraph(other *Graph, root NodeID) NodeID {
	return g.create(SubGraph{Root: root, Graph: other})
}

// Plane creates a plane node. The normal (plane.xyz) should be unit length.
func (g *Graph) Plane(plane vecf.Vec4) NodeID {
	return g.create(Plane{Plane: plane})
}

// Sphere creates a sphere node.
func (g *Graph) Sphere(center vecf.Vec3, radius float32) NodeID {
	return g.create(Sphere{Center: center, Radius: radius})
}

// RoundedBox creates a rounded box node.
func (g *Graph) RoundedBox(halfSize vecf.Vec3, roundingRadius float32) NodeID {
	return g.create(RoundedBox{HalfSize: halfSize, RoundingRadius: roundingRadius})
}

// Torus creates a torus node.
func (g *Graph) Torus(bigR, smallR float32) NodeID {
	return g.create(Torus{BigR: bigR, SmallR: smallR})
}

// TorusSector creates a partial torus node. halfAngle=Pi gives a full
// torus, halfAngle=Pi/2 gives half a torus, and so on.
func (g *Graph) TorusSector(bigR, smallR, halfAngle float32) NodeID {
	s, c := sincos(halfAngle)
	return g.create(TorusSector{BigR: bigR, SmallR: smallR, SinCosHalfAngle: vecf.V2(s, c)})
}

// RawTorusSector creates a partial torus node directly from an
// already-computed sin/cos pair, bypassing the half-angle derivation
// TorusSector performs. Used by the decompiler, which only ever has the
// sin/cos pair available (the half-angle itself is not preserved by
// compilation).
func (g *Graph) RawTorusSector(bigR, smallR float32, sinCosHalfAngle vecf.Vec2) NodeID {
	return g.create(TorusSector{BigR: bigR, SmallR: smallR, SinCosHalfAngle: sinCosHalfAngle})
}

// BiconvexLens creates a lens node. Sagittas are clamped to avoid
// rendering artifacts from degenerate (near-zero or over-large) caps.
func (g *Graph) BiconvexLens(lowerSagitta, upperSagitta, chord float32) NodeID {
	const minSagitta = 1e-3
	maxSagitta := chord / 2
	upperSagitta = vecf.Clamp(upperSagitta, minSagitta, maxSagitta)
	lowerSagitta = vecf.Clamp(lowerSagitta, minSagitta, maxSagitta)
	return g.create(BiconvexLens{LowerSagitta: lowerSagitta, UpperSagitta: upperSagitta, Chord: chord})
}

// Capsule creates a capsule node between the two given points.
func (g *Graph) Capsule(points [2]vecf.Vec3, radius float32) NodeID {
	return g.create(Capsule{Points: points, Radius: radius})
}

// CapsuleY creates a capsule from the origin along the Y axis.
func (g *Graph) CapsuleY(length, radius float32) NodeID {
	return g.Capsule([2]vecf.Vec3{vecf.Zero3(), vecf.V3(0, length, 0)}, radius)
}

// RoundedCylinder creates a cylinder node with its edges rounded off.
// When roundingRadius == 2*cylinderRadius the result is a capsule. When
// halfHeight == roundingRadius the result is a filled torus.
func (g *Graph) RoundedCylinder(cylinderRadius, halfHeight, roundingRadius float32) NodeID {
	return g.create(RoundedCylinder{
		CylinderRadius: cylinderRadius,
		HalfHeight:     halfHeight,
		RoundingRadius: roundingRadius,
	})
}

// TaperedCapsule creates the convex hull of two spheres. When one sphere
// fully contains the other, this degenerates to a single Sphere node
// instead, since the tapered-capsule formula misbehaves in that case.
func (g *Graph) TaperedCapsule(points [2]vecf.Vec3, radii [2]float32) NodeID {
	distance := points[0].Sub(points[1]).Len()
	switch {
	case distance+radii[1] <= radii[0]:
		return g.Sphere(points[0], radii[0])
	case distance+radii[0] <= radii[1]:
		return g.Sphere(points[1], radii[1])
	default:
		return g.create(TaperedCapsule{Points: points, Radii: radii})
	}
}

// Cone creates a cone node with its base centered at the origin,
// extending height along the positive Y axis.
func (g *Graph) Cone(radius, height float32) NodeID {
	return g.create(Cone{Radius: radius, Height: height})
}

// OpMaterial assigns material to every surface point of child.
func (g *Graph) OpMaterial(child NodeID, material sdf.Material) NodeID {
	return g.create(MaterialNode{Child: child, Material: material})
}

// OpRGB is a convenience wrapper around OpMaterial for a plain color.
func (g *Graph) OpRGB(child NodeID, rgb vecf.Vec3) NodeID {
	return g.OpMaterial(child, sdf.NewMaterial(rgb))
}

// OpUnion is the sharp union of lhs and rhs.
func (g *Graph) OpUnion(lhs, rhs NodeID) NodeID {
	return g.create(Union{LHS: lhs, RHS: rhs})
}

// OpUnionSmooth is the polynomial-smooth union of lhs and rhs.
func (g *Graph) OpUnionSmooth(lhs, rhs NodeID, size float32) NodeID {
	return g.create(UnionSmooth{LHS: lhs, RHS: rhs, Size: size})
}

// OpUnionMulti unions every child in sequence.
func (g *Graph) OpUnionMulti(children []NodeID) NodeID {
	return g.create(UnionMulti{Children: children})
}

// OpUnionMultiSmooth smooth-unions every child in sequence.
func (g *Graph) OpUnionMultiSmooth(children []NodeID, size float32) NodeID {
	return g.create(UnionMultiSmooth{Children: children, Size: size})
}

// OpSubtract is the sharp subtraction lhs - rhs.
func (g *Graph) OpSubtract(lhs, rhs NodeID) NodeID {
	return g.create(Subtract{LHS: lhs, RHS: rhs})
}

// OpSubtractSmooth is the polynomial-smooth subtraction lhs - rhs.
func (g *Graph) OpSubtractSmooth(lhs, rhs NodeID, size float32) NodeID {
	return g.create(SubtractSmooth{LHS: lhs, RHS: rhs, Size: size})
}

// OpIntersect is the sharp intersection of lhs and rhs.
func (g *Graph) OpIntersect(lhs, rhs NodeID) NodeID {
	return g.create(Intersect{LHS: lhs, RHS: rhs})
}

// OpIntersectSmooth is the polynomial-smooth intersection of lhs and rhs.
func (g *Graph) OpIntersectSmooth(lhs, rhs NodeID, size float32) NodeID {
	return g.create(IntersectSmooth{LHS: lhs, RHS: rhs, Size: size})
}

// OpCSG dispatches to OpUnion/OpSubtract/OpIntersect by op.
func (g *Graph) OpCSG(lhs NodeID, op CsgOp, rhs NodeID) NodeID {
	switch op {
	case CsgUnion:
		return g.OpUnion(lhs, rhs)
	case CsgSubtract:
		return g.OpSubtract(lhs, rhs)
	case CsgIntersect:
		return g.OpIntersect(lhs, rhs)
	default:
		panic("graph: unknown CsgOp")
	}
}

// OpCSGSmooth dispatches to the smooth combinators by op.
func (g *Graph) OpCSGSmooth(lhs NodeID, op CsgOp, rhs NodeID, size float32) NodeID {
	switch op {
	case CsgUnion:
		return g.OpUnionSmooth(lhs, rhs, size)
	case CsgSubtract:
		return g.OpSubtractSmooth(lhs, rhs, size)
	case CsgIntersect:
		return g.OpIntersectSmooth(lhs, rhs, size)
	default:
		panic("graph: unknown CsgOp")
	}
}

// OpRotate rotates child's local space by rotation.
func (g *Graph) OpRotate(child NodeID, rotation vecf.Quat) NodeID {
	return g.create(Rotate{Rotation: rotation, Child: child})
}

// OpTranslate offsets child's local space by translation.
func (g *Graph) OpTranslate(child NodeID, translation vecf.Vec3) NodeID {
	return g.create(Translate{Translation: translation, Child: child})
}

// OpScale uniformly scales child's local space. scale must be >= 0;
// negative (mirroring) scale is not supported.
func (g *Graph) OpScale(child NodeID, scale float32) NodeID {
	return g.create(ScaleNode{Scale: scale, Child: child})
}

func sincos(v float32) (sin, cos float32) {
	s, c := sincos64(float64(v))
	return float32(s), float32(c)
}
