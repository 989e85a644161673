package graph

import (
	"github.com/taigrr/opensaft/pkg/sdf"
	"github.com/taigrr/opensaft/pkg/vecf"
)

// NodeID identifies a node within a Graph.
type NodeID uint32

// CsgOp names the three boolean combinators, for callers that want to
// pick the operation dynamically (see Graph.OpCSG/OpCSGSmooth).
type CsgOp int

const (
	CsgUnion CsgOp = iota
	CsgSubtract
	CsgIntersect
)

// Node is implemented by every node variant that can appear in a Graph.
// The compiler and the bounding-box walk both type-switch over it.
type Node interface {
	isNode()
}

// Plane is the infinite plane `plane.xyz.Dot(pos) + plane.w`. The
// normal (plane.xyz) should be unit length.
type Plane struct{ Plane vecf.Vec4 }

// Sphere is centered at Center with the given Radius.
type Sphere struct {
	Center vecf.Vec3
	Radius float32
}

// Capsule is the swept sphere between Points[0] and Points[1].
type Capsule struct {
	Points [2]vecf.Vec3
	Radius float32
}

// RoundedCylinder is centered at the origin, stretching along Y, with
// its edges rounded off.
type RoundedCylinder struct {
	CylinderRadius float32
	HalfHeight     float32
	RoundingRadius float32
}

// TaperedCapsule is the convex hull of two spheres (a "round cone").
type TaperedCapsule struct {
	Points [2]vecf.Vec3
	Radii  [2]float32
}

// Cone has its base centered at the origin, extending Height along +Y.
type Cone struct {
	Radius float32
	Height float32
}

// RoundedBox is a box with its edges and corners rounded off.
type RoundedBox struct {
	HalfSize       vecf.Vec3
	RoundingRadius float32
}

// Torus lies in the XZ plane, centered at the origin.
type Torus struct {
	BigR, SmallR float32
}

// TorusSector is a partial Torus; SinCosHalfAngle is the (sin, cos) of
// the half angle, so (0,-1) is a full torus and (1,0) is a half torus.
// The missing wedge faces negative Z.
type TorusSector struct {
	BigR, SmallR    float32
	SinCosHalfAngle vecf.Vec2
}

// BiconvexLens is the intersection of two spherical caps sharing a base
// diameter (Chord), with independent lower/upper sagittas.
type BiconvexLens struct {
	LowerSagitta, UpperSagitta, Chord float32
}

// MaterialNode assigns a Material to every surface point of Child.
type MaterialNode struct {
	Child    NodeID
	Material sdf.Material
}

// Union, Subtract, Intersect are the sharp pairwise boolean combinators.
type Union struct{ LHS, RHS NodeID }
type Subtract struct{ LHS, RHS NodeID }
type Intersect struct{ LHS, RHS NodeID }

// UnionSmooth, SubtractSmooth, IntersectSmooth are the polynomial-smooth
// pairwise boolean combinators, blending over the given Size.
type UnionSmooth struct {
	LHS, RHS NodeID
	Size     float32
}
type SubtractSmooth struct {
	LHS, RHS NodeID
	Size     float32
}
type IntersectSmooth struct {
	LHS, RHS NodeID
	Size     float32
}

// UnionMulti unions every child in sequence (left-deep).
type UnionMulti struct{ Children []NodeID }

// UnionMultiSmooth smooth-unions every child in sequence (left-deep).
type UnionMultiSmooth struct {
	Children []NodeID
	Size     float32
}

// Translate offsets Child's local space by Translation.
type Translate struct {
	Translation vecf.Vec3
	Child       NodeID
}

// Rotate rotates Child's local space by Rotation.
type Rotate struct {
	Rotation vecf.Quat
	Child    NodeID
}

// ScaleNode uniformly scales Child's local space. Negative (mirroring)
// scale is not supported.
type ScaleNode struct {
	Scale float32
	Child NodeID
}

// SubGraph embeds an entire other Graph, rooted at Root, as a single node.
type SubGraph struct {
	Root  NodeID
	Graph *Graph
}

func (Plane) isNode()            {}
func (Sphere) isNode()           {}
func (Capsule) isNode()          {}
func (RoundedCylinder) isNode()  {}
func (TaperedCapsule) isNode()   {}
func (Cone) isNode()             {}
func (RoundedBox) isNode()       {}
func (Torus) isNode()            {}
func (TorusSector) isNode()      {}
func (BiconvexLens) isNode()     {}
func (MaterialNode) isNode()     {}
func (Union) isNode()            {}
func (Subtract) isNode()         {}
func (Intersect) isNode()        {}
func (UnionSmooth) isNode()      {}
func (SubtractSmooth) isNode()   {}
func (IntersectSmooth) isNode()  {}
func (UnionMulti) isNode()       {}
func (UnionMultiSmooth) isNode() {}
func (Translate) isNode()        {}
func (Rotate) isNode()           {}
func (ScaleNode) isNode()        {}
func (SubGraph) isNode()         {}
