package graph

import (
	"math"

	"github.com/taigrr/opensaft/pkg/vecf"
)

// ExampleParams parameterizes the demo scene built by Example, so a
// caller can animate it (e.g. sweep Angle over time).
type ExampleParams struct {
	BigR                     float32
	SmallR                   float32
	Height                   float32
	Angle                    float32
	Smoothness               float32
	CapsuleY                 float32
	RoundingRadius           float32
	BoxScale                 float32
	BoxTranslationY          float32
	BiconvexLensLowerSagitta float32
	BiconvexLensUpperSagitta float32
	BiconvexLensChord        float32
	Head                     float32
}

// DefaultExampleParams returns the parameters used to produce the
// reference demo scene.
func DefaultExampleParams() ExampleParams {
	return ExampleParams{
		BigR:                     1.0,
		SmallR:                   0.5,
		Height:                   2.0,
		Angle:                    float32(2 * math.Pi * 2 / 3),
		Smoothness:               0.45,
		CapsuleY:                 0.3,
		RoundingRadius:           0.3,
		BoxScale:                 0.5,
		BoxTranslationY:          0.5,
		BiconvexLensLowerSagitta: 0.5,
		BiconvexLensUpperSagitta: 0.3,
		BiconvexLensChord:        1.0,
		Head:                     1.0,
	}
}

// Example builds the full reference demo scene: a sphere/capsule/box/
// lens "head" exercising every boolean combinator, plus a tapered
// capsule, cone, rounded cylinder, torus and torus sector, unioned
// together. No Plane is included.
func (g *Graph) Example(params ExampleParams) NodeID {
	ops := g.ExampleOperations(params)

	taperedCapsule := g.TaperedCapsule(
		[2]vecf.Vec3{vecf.V3(0, 0, 6), vecf.V3(0, params.Height, 6)},
		[2]float32{params.BigR, params.SmallR},
	)

	cone := g.Cone(params.BigR, params.Height)
	cone = g.OpTranslate(cone, vecf.V3(0, 0, 9))

	roundedCylinder := g.RoundedCylinder(params.BigR, params.Height/2, params.RoundingRadius)
	roundedCylinder = g.OpTranslate(roundedCylinder, vecf.V3(3, params.Height/2, 6))

	torus := g.Torus(params.BigR, params.SmallR)
	torus = g.OpTranslate(torus, vecf.V3(-3, 0, 6))

	torusSector := g.TorusSector(params.BigR, params.SmallR, params.Angle/2)
	torusSector = g.OpTranslate(torusSector, vecf.V3(-3, 2, 6))

	return g.OpUnionMulti([]NodeID{ops, taperedCapsule, cone, roundedCylinder, torus, torusSector})
}

// ExampleOperations builds the "head" sub-scene: a sphere, a capsule, a
// rounded box, and a biconvex-lens mouth subtracted from a head sphere,
// plus six copies of the sphere/capsule pair combined with every boolean
// combinator (three sharp, three smooth), all spread out for inspection.
func (g *Graph) ExampleOperations(params ExampleParams) NodeID {
	sphere := g.Sphere(vecf.Zero3(), 1.0)
	sphere = g.OpRGB(sphere, vecf.V3(0.3, 0.7, 0.3))

	capsule := g.Capsule([2]vecf.Vec3{
		vecf.V3(-2, params.CapsuleY, 0),
		vecf.V3(2, params.CapsuleY, 0),
	}, 0.65)
	capsule = g.OpRGB(capsule, vecf.V3(0.3, 0.3, 0.9))

	roundedBox := g.RoundedBox(vecf.V3(0.5, 1.0, 2.0), params.RoundingRadius)
	roundedBox = g.OpRGB(roundedBox, vecf.V3(1.0, 0.3, 0.9))
	roundedBox = g.OpRotate(roundedBox, vecf.QuatFromRotationY(params.Angle))
	roundedBox = g.OpScale(roundedBox, params.BoxScale)
	roundedBox = g.OpTranslate(roundedBox, vecf.V3(0, params.BoxTranslationY, 0))

	biconvexLens := g.BiconvexLens(params.BiconvexLensLowerSagitta, params.BiconvexLensUpperSagitta, params.BiconvexLensChord)
	headSphere := g.Sphere(vecf.Zero3(), params.Head)

	mouth := g.OpTranslate(biconvexLens, vecf.V3(1, 0, 0))
	head := g.OpSubtract(headSphere, mouth)

	unionSharp := g.OpUnion(sphere, capsule)
	subtractSharp := g.OpSubtract(sphere, capsule)
	intersectSharp := g.OpIntersect(sphere, capsule)
	unionSmooth := g.OpUnionSmooth(sphere, capsule, params.Smoothness)
	subtractSmooth := g.OpSubtractSmooth(sphere, capsule, params.Smoothness)
	intersectSmooth := g.OpIntersectSmooth(sphere, capsule, params.Smoothness)

	nodes := []NodeID{
		g.OpTranslate(unionSharp, vecf.V3(-3, 2, -3)),
		g.OpTranslate(subtractSharp, vecf.V3(-3, 2, 0)),
		g.OpTranslate(intersectSharp, vecf.V3(-3, 2, 3)),
		g.OpTranslate(unionSmooth, vecf.V3(3, 2, -3)),
		g.OpTranslate(subtractSmooth, vecf.V3(3, 2, 0)),
		g.OpTranslate(intersectSmooth, vecf.V3(3, 2, 3)),
		g.OpTranslate(roundedBox, vecf.V3(0, 2, 0)),
		g.OpTranslate(head, vecf.V3(0, 2, 3)),
	}
	return g.OpUnionMulti(nodes)
}
