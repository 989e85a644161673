package vecf

import (
	"math"
	"testing"
)

func TestQuatIdentityRotatesNothing(t *testing.T) {
	v := V3(1, 2, 3)
	if got := QuatIdentity().RotateVec3(v); got != v {
		t.Errorf("identity rotation = %v, want %v", got, v)
	}
}

func TestQuatFromRotationY90(t *testing.T) {
	q := QuatFromRotationY(float32(math.Pi / 2))
	got := q.RotateVec3(UnitX())
	want := V3(0, 0, -1)
	const eps = 1e-5
	if !approxEq32(got.X, want.X, eps) || !approxEq32(got.Y, want.Y, eps) || !approxEq32(got.Z, want.Z, eps) {
		t.Errorf("rotate UnitX by 90deg around Y = %v, want %v", got, want)
	}
}

func TestQuatConjugateIsInverse(t *testing.T) {
	q := QuatFromAxisAngle(UnitY(), 1.3)
	v := V3(2, -1, 4)

	rotated := q.RotateVec3(v)
	back := q.Conjugate().RotateVec3(rotated)

	const eps = 1e-4
	if !approxEq32(back.X, v.X, eps) || !approxEq32(back.Y, v.Y, eps) || !approxEq32(back.Z, v.Z, eps) {
		t.Errorf("conjugate roundtrip = %v, want %v", back, v)
	}
}

func TestQuatMulComposesInApplicationOrder(t *testing.T) {
	// Two quarter turns around Y compose into a half turn.
	quarter := QuatFromRotationY(float32(math.Pi / 2))
	half := quarter.Mul(quarter)

	got := half.RotateVec3(UnitX())
	want := V3(-1, 0, 0)

	const eps = 1e-4
	if !approxEq32(got.X, want.X, eps) || !approxEq32(got.Y, want.Y, eps) || !approxEq32(got.Z, want.Z, eps) {
		t.Errorf("two quarter turns = %v, want %v", got, want)
	}
}
