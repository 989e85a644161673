// Package tracer sphere-traces a ray against a signed distance field,
// finding either the first surface hit or the point along the ray that
// came closest to one.
package tracer

import (
	"math"

	"github.com/taigrr/opensaft/pkg/vecf"
)

// Options controls how far and how persistently Trace marches.
type Options struct {
	// MaxSteps bounds how many samples the march takes before giving up.
	MaxSteps int
	// StepConstant scales each step; lower it if the field underestimates
	// distances (i.e. isn't truly 1-Lipschitz) and the march overshoots.
	StepConstant float32
}

// DefaultOptions is 1024 steps at the field's own estimate.
func DefaultOptions() Options {
	return Options{MaxSteps: 1024, StepConstant: 1.0}
}

// ClosestHit is a point along a march and what was found there. If
// IsHit is false, this is the closest approach to a surface the march
// found, not an actual intersection.
type ClosestHit struct {
	T     float32
	Pos   vecf.Vec3
	Dist  float32
	IsHit bool
}

// Miss is the identity element for Less: every real ClosestHit sorts
// before it.
func Miss() ClosestHit {
	return ClosestHit{
		T:     float32(math.Inf(1)),
		Pos:   vecf.Splat3(float32(math.NaN())),
		Dist:  float32(math.Inf(1)),
		IsHit: false,
	}
}

// angleDistance is how close the march came to a surface, as seen from
// the ray origin: the surface distance divided by how far along the ray
// we are. Smaller means the ray passed nearer the surface.
func (h ClosestHit) angleDistance() float32 {
	if h.T <= h.Dist {
		return float32(math.Inf(1))
	}
	return h.Dist / h.T
}

// Less reports whether h should be preferred over other: hits before
// misses, earlier hits before later ones, and among misses the one
// that came closer to a surface.
func (h ClosestHit) Less(other ClosestHit) bool {
	switch {
	case h.IsHit && !other.IsHit:
		return true
	case !h.IsHit && other.IsHit:
		return false
	case h.IsHit && other.IsHit:
		return h.T < other.T
	default:
		return h.angleDistance() < other.angleDistance()
	}
}

// Trace marches ray from tRange[0] to tRange[1], calling sd (which must
// never overestimate how far the surface is) at each step. It returns
// the first point where the field reports (approximately) zero, or, if
// none is found within MaxSteps or before tRange[1], the point that
// came closest (Miss() if no sample with t > 0 was taken).
func Trace(sd func(vecf.Vec3) float32, ray vecf.Ray3, tRange [2]float32, opt Options) ClosestHit {
	t := tRange[0]
	closestAngleDistance := float32(math.Inf(1))
	closest := Miss()

	for i := 0; i < opt.MaxSteps; i++ {
		pos := ray.PointAlong(t)
		dist := sd(pos)

		if dist <= 0.001*t {
			return ClosestHit{T: t, Pos: pos, Dist: dist, IsHit: true}
		}

		if t > 0 {
			angleDistance := dist / t
			if angleDistance < closestAngleDistance {
				closestAngleDistance = angleDistance
				closest = ClosestHit{T: t, Pos: pos, Dist: dist, IsHit: false}
			}
		}

		t += dist * opt.StepConstant
		if t >= tRange[1] {
			return closest
		}
	}

	return closest
}
