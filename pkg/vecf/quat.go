package vecf

import "math"

// Quat represents a unit quaternion rotation, single precision.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle builds a rotation of angle radians around axis
// (which is assumed to already be normalized).
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	half := angle * 0.5
	s := float32(math.Sin(float64(half)))
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, float32(math.Cos(float64(half)))}
}

// QuatFromRotationY builds a rotation of angle radians around the Y axis.
func QuatFromRotationY(angle float32) Quat {
	return QuatFromAxisAngle(UnitY(), angle)
}

// Conjugate returns the inverse rotation for a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Mul composes two rotations: (a.Mul(b)) applies b first, then a.
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// RotateVec3 rotates v by the quaternion.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	qv := Vec3{q.X, q.Y, q.Z}
	uv := qv.Cross(v)
	uuv := qv.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}
