package sdf

import (
	"math"

	"github.com/taigrr/opensaft/pkg/vecf"
)

func sqrtf(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// SDPlane evaluates the infinite plane `plane.xyz.Dot(pos) + plane.w`.
// The plane normal (plane.xyz) should be unit length.
func SDPlane(pos vecf.Vec3, plane vecf.Vec4) float32 {
	return pos.Dot(plane.Truncate()) + plane.W
}

// SDSphere evaluates a sphere centered at center with the given radius.
func SDSphere(pos, center vecf.Vec3, radius float32) float32 {
	return pos.Sub(center).Len() - radius
}

// SDRoundedBox evaluates a box with rounded edges and corners.
func SDRoundedBox(pos, halfSize vecf.Vec3, roundingRadius float32) float32 {
	q := pos.Abs().Sub(halfSize).Add(vecf.Splat3(roundingRadius))
	qPos := vecf.Vec3{X: vecf.Max(q.X, 0), Y: vecf.Max(q.Y, 0), Z: vecf.Max(q.Z, 0)}
	return qPos.Len() + vecf.Min(vecf.Max(q.X, vecf.Max(q.Y, q.Z)), 0) - roundingRadius
}

// SDTorus evaluates a torus centered at the origin, lying in the XZ plane.
func SDTorus(pos vecf.Vec3, bigR, smallR float32) float32 {
	q := vecf.V2(pos.Xz().Len()-bigR, pos.Y)
	return q.Len() - smallR
}

// SDTorusSector evaluates a partial torus; sinCosHalfAngle is the
// (sin, cos) of the half-angle so that half_angle=Pi is a full torus.
// The missing wedge faces negative Z.
func SDTorusSector(pos vecf.Vec3, bigR, smallR float32, sinCosHalfAngle vecf.Vec2) float32 {
	sin, cos := sinCosHalfAngle.X, sinCosHalfAngle.Y
	px := vecf.Abs(pos.X)
	var k float32
	if cos*px > sin*pos.Z {
		k = px*sin + pos.Z*cos
	} else {
		k = vecf.V2(px, pos.Z).Len()
	}
	p := vecf.V3(px, pos.Y, pos.Z)
	return sqrtf(vecf.Max(0, p.Dot(p)+bigR*bigR-2*bigR*k)) - smallR
}

// SDBiconvexLens evaluates a lens shape as the intersection of two
// spherical caps sharing a base diameter.
func SDBiconvexLens(pos vecf.Vec3, lowerSagitta, upperSagitta, chord float32) float32 {
	chordRadius := chord / 2
	lowerRadius := (chordRadius*chordRadius + lowerSagitta*lowerSagitta) / (2 * lowerSagitta)
	upperRadius := (chordRadius*chordRadius + upperSagitta*upperSagitta) / (2 * upperSagitta)
	lowerCenter := vecf.V3(0, lowerRadius-lowerSagitta, 0)
	upperCenter := vecf.V3(0, -(upperRadius - upperSagitta), 0)
	lower := ScalarDistance(SDSphere(pos, lowerCenter, lowerRadius))
	upper := ScalarDistance(SDSphere(pos, upperCenter, upperRadius))
	return SDOpIntersect(lower, upper).Distance()
}

// SDCapsule evaluates the capsule between points[0] and points[1] with
// the given radius.
func SDCapsule(pos vecf.Vec3, points [2]vecf.Vec3, radius float32) float32 {
	pa := pos.Sub(points[0])
	ba := points[1].Sub(points[0])
	h := vecf.Clamp(pa.Dot(ba)/ba.Dot(ba), 0, 1)
	return pa.Sub(ba.Scale(h)).Len() - radius
}

// SDRoundedCylinder evaluates a cylinder centered on the origin,
// extending along the Y axis, with its edges rounded off.
func SDRoundedCylinder(pos vecf.Vec3, cylinderRadius, halfHeight, roundingRadius float32) float32 {
	d := vecf.V2(
		pos.Xz().Len()-cylinderRadius+roundingRadius,
		vecf.Abs(pos.Y)-halfHeight+roundingRadius,
	)
	dPos := vecf.V2(vecf.Max(d.X, 0), vecf.Max(d.Y, 0))
	return vecf.Min(vecf.Max(d.X, d.Y), 0) + dPos.Len() - roundingRadius
}

// SDTaperedCapsule evaluates the convex hull of two spheres (a "round
// cone"), using the single-sqrt formula.
func SDTaperedCapsule(pos vecf.Vec3, points [2]vecf.Vec3, radii [2]float32) float32 {
	ba := points[1].Sub(points[0])
	l2 := ba.Dot(ba)
	rr := radii[0] - radii[1]
	a2 := l2 - rr*rr
	il2 := 1 / l2

	pa := pos.Sub(points[0])
	y := pa.Dot(ba)
	z := y - l2

	scaledPa := pa.Scale(l2).Sub(ba.Scale(y))
	x2 := scaledPa.Dot(scaledPa)
	y2 := y * y * l2
	z2 := z * z * l2

	k := sign(rr) * rr * rr * x2

	switch {
	case sign(z)*a2*z2 > k:
		return sqrtf(x2+z2)*il2 - radii[1]
	case sign(y)*a2*y2 < k:
		return sqrtf(x2+y2)*il2 - radii[0]
	default:
		return (y*rr+sqrtf(x2*a2*il2))*il2 - radii[0]
	}
}

// SDCone evaluates a cone with its base centered at the origin,
// extending height along the positive Y axis.
func SDCone(pos vecf.Vec3, radius, height float32) float32 {
	q := vecf.V2(radius, height)
	w := vecf.V2(pos.Xz().Len(), height-pos.Y)

	a := w.Sub(q.Scale(vecf.Clamp(w.Dot(q)/q.Dot(q), 0, 1)))
	b := w.Sub(vecf.V2(radius*vecf.Clamp(w.X/radius, 0, 1), height))

	d := vecf.Min(a.Dot(a), b.Dot(b))
	s := vecf.Max(w.X*height-w.Y*radius, w.Y-height)

	return sqrtf(d) * sign(s)
}
