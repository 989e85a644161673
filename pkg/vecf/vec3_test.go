package vecf

import (
	"math"
	"testing"
)

func approxEq32(a, b, eps float32) bool {
	return Abs(a-b) <= eps
}

func TestVec3AddSub(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -1, 2)

	sum := a.Add(b)
	if sum != (Vec3{5, 1, 5}) {
		t.Errorf("Add = %v, want {5 1 5}", sum)
	}

	diff := a.Sub(b)
	if diff != (Vec3{-3, 3, 1}) {
		t.Errorf("Sub = %v, want {-3 3 1}", diff)
	}
}

func TestVec3DotCross(t *testing.T) {
	x := UnitX()
	y := UnitY()

	if got := x.Dot(y); got != 0 {
		t.Errorf("UnitX . UnitY = %v, want 0", got)
	}

	cross := x.Cross(y)
	if cross != UnitZ() {
		t.Errorf("UnitX x UnitY = %v, want UnitZ", cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := V3(3, 4, 0)
	n := v.Normalize()
	if !approxEq32(n.Len(), 1, 1e-6) {
		t.Errorf("normalized length = %v, want 1", n.Len())
	}
	if !approxEq32(n.X, 0.6, 1e-6) || !approxEq32(n.Y, 0.8, 1e-6) {
		t.Errorf("normalize(3,4,0) = %v, want (0.6, 0.8, 0)", n)
	}

	if got := Zero3().Normalize(); got != (Vec3{}) {
		t.Errorf("normalize of zero vector = %v, want zero", got)
	}
}

func TestVec3MinMaxComponent(t *testing.T) {
	v := V3(-1, 5, 2)
	if got := v.MaxComponent(); got != 5 {
		t.Errorf("MaxComponent = %v, want 5", got)
	}
	if got := v.MinComponent(); got != -1 {
		t.Errorf("MinComponent = %v, want -1", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, 20, 30)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want a", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want b", got)
	}
	if got := a.Lerp(b, 0.5); got != (Vec3{5, 10, 15}) {
		t.Errorf("Lerp(0.5) = %v, want {5 10 15}", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %v, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %v, want 0.5", got)
	}
}

func TestVec3Xz(t *testing.T) {
	v := V3(1, 2, 3)
	if got := v.Xz(); got != (Vec2{1, 3}) {
		t.Errorf("Xz() = %v, want {1 3}", got)
	}
}

func TestVec3Abs(t *testing.T) {
	v := V3(-1, 2, -3)
	if got := v.Abs(); got != (Vec3{1, 2, 3}) {
		t.Errorf("Abs() = %v, want {1 2 3}", got)
	}
}

func TestVec3LenSqMatchesLen(t *testing.T) {
	v := V3(3, 4, 12)
	want := float32(math.Sqrt(float64(v.LenSq())))
	if !approxEq32(v.Len(), want, 1e-5) {
		t.Errorf("Len() = %v, want sqrt(LenSq()) = %v", v.Len(), want)
	}
}
