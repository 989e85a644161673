package vecf

import "math"

// Vec3 represents a 3D vector, single precision.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Splat3 returns a vector with all components set to v.
func Splat3(v float32) Vec3 {
	return Vec3{v, v, v}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// UnitX returns (1, 0, 0).
func UnitX() Vec3 {
	return Vec3{1, 0, 0}
}

// UnitY returns (0, 1, 0).
func UnitY() Vec3 {
	return Vec3{0, 1, 0}
}

// UnitZ returns (0, 0, 1).
func UnitZ() Vec3 {
	return Vec3{0, 0, 1}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float32 {
	return float32(math.Sqrt(float64(a.Dot(a))))
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float32 {
	return a.Dot(a)
}

// Normalize returns the unit vector in the same direction.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Abs returns the component-wise absolute value.
func (a Vec3) Abs() Vec3 {
	return Vec3{Abs(a.X), Abs(a.Y), Abs(a.Z)}
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{Min(a.X, b.X), Min(a.Y, b.Y), Min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{Max(a.X, b.X), Max(a.Y, b.Y), Max(a.Z, b.Z)}
}

// MaxComponent returns the largest of the three components.
func (a Vec3) MaxComponent() float32 {
	return Max(a.X, Max(a.Y, a.Z))
}

// MinComponent returns the smallest of the three components.
func (a Vec3) MinComponent() float32 {
	return Min(a.X, Min(a.Y, a.Z))
}

// Xz returns the (X, Z) swizzle, used by several primitives that are
// rotationally symmetric around the Y axis.
func (a Vec3) Xz() Vec2 {
	return Vec2{a.X, a.Z}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3) Lerp(b Vec3, t float32) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Abs returns the absolute value of a float32.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Min returns the smaller of two float32 values.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two float32 values.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return Min(Max(v, lo), hi)
}
