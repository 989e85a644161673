package sdf

import "github.com/taigrr/opensaft/pkg/vecf"

// SignedDistance is the value type threaded through every primitive and
// combinator. It is implemented by ScalarDistance (distance only, used
// when only the surface itself matters) and RGBDistance (distance plus
// an interpolated material color, used for vertex color gathering).
//
// Implementing this as a constraint on a generic value type, rather than
// as an interface satisfied by a boxed value, keeps every primitive and
// combinator free of dynamic dispatch and heap allocation.
type SignedDistance interface {
	Distance() float32
	WithDistance(d float32) SignedDistance
	MultiplyDistanceBy(factor float32) SignedDistance
	WithMaterial(m Material) SignedDistance
	Lerp(other SignedDistance, t float32) SignedDistance
	IsFinite() bool
}

// ScalarDistance is the distance-only SignedDistance instantiation.
type ScalarDistance float32

// Distance returns the signed distance.
func (d ScalarDistance) Distance() float32 { return float32(d) }

// WithDistance returns a copy with a replaced distance.
func (d ScalarDistance) WithDistance(nd float32) SignedDistance { return ScalarDistance(nd) }

// MultiplyDistanceBy scales the distance, used when undoing a PushScale.
func (d ScalarDistance) MultiplyDistanceBy(factor float32) SignedDistance {
	return ScalarDistance(float32(d) * factor)
}

// WithMaterial discards the material (scalar distances carry none).
func (d ScalarDistance) WithMaterial(Material) SignedDistance { return d }

// Lerp interpolates the distance only.
func (d ScalarDistance) Lerp(other SignedDistance, t float32) SignedDistance {
	o := other.(ScalarDistance)
	return ScalarDistance(float32(d) + (float32(o)-float32(d))*t)
}

// IsFinite reports whether the distance is finite.
func (d ScalarDistance) IsFinite() bool {
	return !isInf32(float32(d)) && !isNaN32(float32(d))
}

// RGBDistance pairs a material color with a signed distance, used to
// gather the color of the surface nearest to a sample point.
type RGBDistance struct {
	RGB vecf.Vec3
	D   float32
}

// Distance returns the signed distance.
func (d RGBDistance) Distance() float32 { return d.D }

// WithDistance returns a copy with a replaced distance, color unchanged.
func (d RGBDistance) WithDistance(nd float32) SignedDistance {
	return RGBDistance{RGB: d.RGB, D: nd}
}

// MultiplyDistanceBy scales the distance, color unchanged.
func (d RGBDistance) MultiplyDistanceBy(factor float32) SignedDistance {
	return RGBDistance{RGB: d.RGB, D: d.D * factor}
}

// WithMaterial replaces the color, distance unchanged.
func (d RGBDistance) WithMaterial(m Material) SignedDistance {
	return RGBDistance{RGB: m.RGB, D: d.D}
}

// Lerp interpolates both the color and the distance.
func (d RGBDistance) Lerp(other SignedDistance, t float32) SignedDistance {
	o := other.(RGBDistance)
	return RGBDistance{
		RGB: d.RGB.Lerp(o.RGB, t),
		D:   d.D + (o.D-d.D)*t,
	}
}

// IsFinite reports whether the distance is finite.
func (d RGBDistance) IsFinite() bool {
	return !isInf32(d.D) && !isNaN32(d.D)
}

// RGBInfinity is the RGBDistance representing "no surface here".
func RGBInfinity() RGBDistance {
	return RGBDistance{RGB: vecf.Splat3(1), D: inf32}
}

// ScalarInfinity is the ScalarDistance representing "no surface here".
func ScalarInfinity() ScalarDistance {
	return ScalarDistance(inf32)
}

// WithMaterial applies a Material node to a generic SignedDistance value.
func WithMaterial[T SignedDistance](d T, m Material) T {
	return d.WithMaterial(m).(T)
}
