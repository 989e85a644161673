// Package vecf provides single-precision 3D math primitives for the
// signed distance field pipeline.
package vecf

import "math"

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float32
}

// V2 creates a new Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float32) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length (magnitude) of the vector.
func (a Vec2) Len() float32 {
	return Hypot(a.X, a.Y)
}

// Max returns the component-wise maximum.
func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{Max(a.X, b.X), Max(a.Y, b.Y)}
}

// MaxComponent returns the largest of the two components.
func (a Vec2) MaxComponent() float32 {
	return Max(a.X, a.Y)
}

// Hypot returns sqrt(x*x + y*y), matching the non-SPIR-V path used
// throughout the primitive distance functions.
func Hypot(x, y float32) float32 {
	return float32(math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y)))
}
