package tracer

import (
	"math"
	"testing"

	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/sdf"
	"github.com/taigrr/opensaft/pkg/vecf"
)

func sphereSD(center vecf.Vec3, radius float32) func(vecf.Vec3) float32 {
	return func(p vecf.Vec3) float32 { return sdf.SDSphere(p, center, radius) }
}

func TestTraceHitsSphereHeadOn(t *testing.T) {
	sd := sphereSD(vecf.Zero3(), 1)
	ray := vecf.NewRay3(vecf.V3(-5, 0, 0), vecf.V3(1, 0, 0))

	hit := Trace(sd, ray, [2]float32{0, 100}, DefaultOptions())
	if !hit.IsHit {
		t.Fatal("expected a hit on a ray pointed straight at the sphere")
	}
	if math.Abs(float64(hit.T-4)) > 0.01 {
		t.Errorf("hit.T = %v, want ~4", hit.T)
	}
}

func TestTraceMissesSphereWhenRayPassesWide(t *testing.T) {
	sd := sphereSD(vecf.Zero3(), 1)
	ray := vecf.NewRay3(vecf.V3(-5, 10, 0), vecf.V3(1, 0, 0))

	hit := Trace(sd, ray, [2]float32{0, 100}, DefaultOptions())
	if hit.IsHit {
		t.Fatal("expected a miss on a ray passing far from the sphere")
	}
}

func TestTraceStopsAtTRangeUpperBound(t *testing.T) {
	sd := sphereSD(vecf.V3(1000, 0, 0), 1)
	ray := vecf.NewRay3(vecf.Zero3(), vecf.V3(1, 0, 0))

	hit := Trace(sd, ray, [2]float32{0, 10}, DefaultOptions())
	if hit.IsHit {
		t.Fatal("expected no hit: the surface is far beyond tRange's upper bound")
	}
	// The only sample is taken at t=0 (its step jumps past 10), and a
	// sample at t=0 is never a closest-approach candidate, so the result
	// is Miss() with an infinite T.
	if !math.IsInf(float64(hit.T), 1) {
		t.Errorf("hit.T = %v, want +Inf: no sample with t > 0 lies before tRange's upper bound of 10", hit.T)
	}
}

func TestClosestHitLessPrefersHitsOverMisses(t *testing.T) {
	hit := ClosestHit{IsHit: true, T: 50}
	miss := Miss()
	if !hit.Less(miss) {
		t.Error("a hit should sort before a miss")
	}
	if miss.Less(hit) {
		t.Error("a miss should not sort before a hit")
	}
}

func TestClosestHitLessPrefersEarlierHits(t *testing.T) {
	near := ClosestHit{IsHit: true, T: 1}
	far := ClosestHit{IsHit: true, T: 10}
	if !near.Less(far) {
		t.Error("an earlier hit should sort before a later one")
	}
	if far.Less(near) {
		t.Error("a later hit should not sort before an earlier one")
	}
}

func TestClosestHitLessPrefersCloserMisses(t *testing.T) {
	closer := ClosestHit{IsHit: false, T: 10, Dist: 1}
	farther := ClosestHit{IsHit: false, T: 10, Dist: 5}
	if !closer.Less(farther) {
		t.Error("a miss with smaller angleDistance should sort first")
	}
}

func TestMissNeverSortsBeforeARealHit(t *testing.T) {
	miss := Miss()
	realHit := ClosestHit{IsHit: true, T: 1}
	if miss.Less(realHit) {
		t.Error("Miss() should never sort before a real hit")
	}
}

func TestDefaultOptionsAreSane(t *testing.T) {
	opt := DefaultOptions()
	if opt.MaxSteps <= 0 || opt.StepConstant <= 0 {
		t.Errorf("DefaultOptions = %+v, want positive MaxSteps and StepConstant", opt)
	}
}

func TestMarchHitsCompiledGraphSphere(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.V3(0, 0, 10), 2)
	ray := vecf.NewRay3(vecf.Zero3(), vecf.V3(0, 0, 1))

	hit := March(g, s, ray, [2]float32{0, 100}, DefaultOptions())
	if !hit.IsHit {
		t.Fatal("expected March to hit the compiled sphere")
	}
	if math.Abs(float64(hit.T-8)) > 0.01 {
		t.Errorf("hit.T = %v, want ~8", hit.T)
	}
}
