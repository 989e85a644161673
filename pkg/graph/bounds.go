package graph

import "github.com/taigrr/opensaft/pkg/vecf"

// BoundingBox returns a conservative axis-aligned bounding box for the
// sub-tree rooted at node.
//
// The smooth combinators (UnionSmooth, UnionMultiSmooth) can in practice
// push the surface slightly outside the union of their operands'
// bounding boxes. This is not compensated for here: doing so accurately
// would require knowing the blend size everywhere it could possibly
// matter, and in practice the overshoot is small enough not to matter
// for meshing purposes.
func (g *Graph) BoundingBox(node NodeID) BoundingBox {
	switch n := g.MustGet(node).(type) {
	case Plane:
		return Everything()

	case Sphere:
		return FromCenterSize(n.Center, vecf.Splat3(2*n.Radius))

	case Capsule:
		min := vecf.V3(
			vecf.Min(n.Points[0].X-n.Radius, n.Points[1].X-n.Radius),
			vecf.Min(n.Points[0].Y-n.Radius, n.Points[1].Y-n.Radius),
			vecf.Min(n.Points[0].Z-n.Radius, n.Points[1].Z-n.Radius),
		)
		max := vecf.V3(
			vecf.Max(n.Points[0].X+n.Radius, n.Points[1].X+n.Radius),
			vecf.Max(n.Points[0].Y+n.Radius, n.Points[1].Y+n.Radius),
			vecf.Max(n.Points[0].Z+n.Radius, n.Points[1].Z+n.Radius),
		)
		return FromMinMax(min, max)

	case RoundedCylinder:
		return FromMinMax(
			vecf.V3(-n.CylinderRadius, -n.HalfHeight, -n.CylinderRadius),
			vecf.V3(n.CylinderRadius, n.HalfHeight, n.CylinderRadius),
		)

	case TaperedCapsule:
		min := vecf.V3(
			vecf.Min(n.Points[0].X-n.Radii[0], n.Points[1].X-n.Radii[1]),
			vecf.Min(n.Points[0].Y-n.Radii[0], n.Points[1].Y-n.Radii[1]),
			vecf.Min(n.Points[0].Z-n.Radii[0], n.Points[1].Z-n.Radii[1]),
		)
		max := vecf.V3(
			vecf.Max(n.Points[0].X+n.Radii[0], n.Points[1].X+n.Radii[1]),
			vecf.Max(n.Points[0].Y+n.Radii[0], n.Points[1].Y+n.Radii[1]),
			vecf.Max(n.Points[0].Z+n.Radii[0], n.Points[1].Z+n.Radii[1]),
		)
		return FromMinMax(min, max)

	case Cone:
		return FromMinMax(
			vecf.V3(-n.Radius, 0, -n.Radius),
			vecf.V3(n.Radius, n.Height, n.Radius),
		)

	case RoundedBox:
		return FromCenterSize(vecf.Zero3(), n.HalfSize.Scale(2))

	case Torus:
		return FromCenterSize(vecf.Zero3(),
			vecf.V3(n.BigR+n.SmallR, n.SmallR, n.BigR+n.SmallR).Scale(2))

	case TorusSector:
		sin, cos := n.SinCosHalfAngle.X, n.SinCosHalfAngle.Y
		var bb BoundingBox
		if cos > 0 {
			// Less than half a torus.
			x := n.BigR * sin
			z := n.BigR * cos
			bb = FromMinMax(vecf.V3(-x, 0, z), vecf.V3(x, 0, n.BigR))
		} else {
			// More than half a torus.
			z := n.BigR * cos
			bb = FromMinMax(vecf.V3(-n.BigR, 0, z), vecf.V3(n.BigR, 0, n.BigR))
		}
		return bb.Expanded(vecf.Splat3(n.SmallR))

	case BiconvexLens:
		chordRadius := n.Chord / 2
		return FromMinMax(
			vecf.V3(-chordRadius, -n.LowerSagitta, -chordRadius),
			vecf.V3(chordRadius, n.UpperSagitta, chordRadius),
		)

	case MaterialNode:
		return g.BoundingBox(n.Child)

	case Union:
		return g.BoundingBox(n.LHS).Union(g.BoundingBox(n.RHS))

	case UnionSmooth:
		return g.BoundingBox(n.LHS).Union(g.BoundingBox(n.RHS))

	case UnionMulti:
		bb := Nothing()
		for _, c := range n.Children {
			bb = bb.Union(g.BoundingBox(c))
		}
		return bb

	case UnionMultiSmooth:
		bb := Nothing()
		for _, c := range n.Children {
			bb = bb.Union(g.BoundingBox(c))
		}
		return bb

	case Subtract:
		return g.BoundingBox(n.LHS)

	case SubtractSmooth:
		return g.BoundingBox(n.LHS)

	case Intersect:
		return g.BoundingBox(n.LHS).Intersection(g.BoundingBox(n.RHS))

	case IntersectSmooth:
		return g.BoundingBox(n.LHS).Intersection(g.BoundingBox(n.RHS))

	case Translate:
		return g.BoundingBox(n.Child).Translated(n.Translation)

	case Rotate:
		return g.BoundingBox(n.Child).RotatedAroundOrigin(n.Rotation)

	case ScaleNode:
		if n.Scale < 0 {
			panic("graph: negative scale is not supported")
		}
		bb := g.BoundingBox(n.Child)
		return BoundingBox{Min: bb.Min.Scale(n.Scale), Max: bb.Max.Scale(n.Scale)}

	case SubGraph:
		return n.Graph.BoundingBox(n.Root)

	default:
		panic("graph: unhandled node kind in BoundingBox")
	}
}
