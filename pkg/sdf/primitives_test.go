package sdf

import (
	"math"
	"testing"

	"github.com/taigrr/opensaft/pkg/vecf"
)

func approxEq(a, b, eps float32) bool {
	return vecf.Abs(a-b) <= eps
}

func TestSDSphere(t *testing.T) {
	tests := []struct {
		name   string
		pos    vecf.Vec3
		center vecf.Vec3
		radius float32
		want   float32
	}{
		{"center", vecf.Zero3(), vecf.Zero3(), 1, -1},
		{"surface", vecf.V3(1, 0, 0), vecf.Zero3(), 1, 0},
		{"outside", vecf.V3(3, 0, 0), vecf.Zero3(), 1, 2},
		{"offset center", vecf.V3(5, 0, 0), vecf.V3(2, 0, 0), 1, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SDSphere(tc.pos, tc.center, tc.radius)
			if !approxEq(got, tc.want, 1e-5) {
				t.Errorf("SDSphere(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestSDPlane(t *testing.T) {
	plane := vecf.V4(0, 1, 0, 0)
	if got := SDPlane(vecf.V3(0, 3, 0), plane); !approxEq(got, 3, 1e-5) {
		t.Errorf("SDPlane above = %v, want 3", got)
	}
	if got := SDPlane(vecf.V3(0, -2, 0), plane); !approxEq(got, -2, 1e-5) {
		t.Errorf("SDPlane below = %v, want -2", got)
	}
}

func TestSDTorusOnRing(t *testing.T) {
	bigR, smallR := float32(2), float32(0.5)
	// A point on the tube's centerline ring, offset outward by smallR,
	// should sit exactly on the surface.
	pos := vecf.V3(bigR+smallR, 0, 0)
	if got := SDTorus(pos, bigR, smallR); !approxEq(got, 0, 1e-4) {
		t.Errorf("SDTorus on ring = %v, want ~0", got)
	}
}

func TestSDCapsuleEndpoints(t *testing.T) {
	points := [2]vecf.Vec3{vecf.V3(-1, 0, 0), vecf.V3(1, 0, 0)}
	radius := float32(0.5)

	// At an endpoint, distance should equal -radius (inside the cap).
	if got := SDCapsule(points[0], points, radius); !approxEq(got, -radius, 1e-5) {
		t.Errorf("SDCapsule at endpoint = %v, want %v", got, -radius)
	}

	// Directly "above" the midpoint by exactly radius is on the surface.
	mid := vecf.V3(0, radius, 0)
	if got := SDCapsule(mid, points, radius); !approxEq(got, 0, 1e-5) {
		t.Errorf("SDCapsule at surface = %v, want ~0", got)
	}
}

func TestSDRoundedBoxReducesToBoxWhenRoundingIsZero(t *testing.T) {
	halfSize := vecf.V3(1, 2, 3)
	pos := vecf.V3(5, 0, 0)
	got := SDRoundedBox(pos, halfSize, 0)
	want := float32(4) // 5 - 1
	if !approxEq(got, want, 1e-5) {
		t.Errorf("SDRoundedBox = %v, want %v", got, want)
	}
}

func TestSDConeApex(t *testing.T) {
	// The apex of a cone of height h is h above the base plane, and
	// should read as just inside the surface along the central axis.
	height := float32(2)
	radius := float32(1)
	apex := vecf.V3(0, height, 0)
	got := SDCone(apex, radius, height)
	if got > 1e-3 {
		t.Errorf("SDCone at apex = %v, want <= ~0", got)
	}
}

func TestSDTaperedCapsuleMatchesSphereWhenPointsCoincide(t *testing.T) {
	p := vecf.V3(1, 1, 1)
	points := [2]vecf.Vec3{p, p.Add(vecf.V3(1e-4, 0, 0))}
	radii := [2]float32{1, 1}

	pos := vecf.V3(4, 1, 1)
	got := SDTaperedCapsule(pos, points, radii)
	want := SDSphere(pos, p, 1)
	if !approxEq(got, want, 1e-2) {
		t.Errorf("SDTaperedCapsule(degenerate) = %v, want ~SDSphere %v", got, want)
	}
}

func TestSign(t *testing.T) {
	if sign(5) != 1 {
		t.Errorf("sign(5) != 1")
	}
	if sign(-5) != -1 {
		t.Errorf("sign(-5) != -1")
	}
	if sign(0) != 0 {
		t.Errorf("sign(0) != 0")
	}
}

func TestSqrtf(t *testing.T) {
	got := sqrtf(9)
	want := float32(math.Sqrt(9))
	if got != want {
		t.Errorf("sqrtf(9) = %v, want %v", got, want)
	}
}
