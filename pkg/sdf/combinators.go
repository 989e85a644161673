package sdf

import "github.com/taigrr/opensaft/pkg/vecf"

// SDOpUnion is the sharp (min) boolean union: whichever operand is
// closer wins, distance and all.
func SDOpUnion[T SignedDistance](d1, d2 T) T {
	if d1.Distance() < d2.Distance() {
		return d1
	}
	return d2
}

// SDOpSubtract is the sharp boolean subtraction max(-d1, d2): d1's shape
// carved out of d2's.
func SDOpSubtract[T SignedDistance](d1, d2 T) T {
	negD1 := -d1.Distance()
	if negD1 > d2.Distance() {
		return d1.WithDistance(negD1).(T)
	}
	return d2
}

// SDOpIntersect is the sharp (max) boolean intersection.
func SDOpIntersect[T SignedDistance](d1, d2 T) T {
	if d1.Distance() > d2.Distance() {
		return d1
	}
	return d2
}

// SDOpUnionSmooth is the polynomial-smooth union. size is clamped to at
// least minSmoothing by the compiler before being passed down here.
func SDOpUnionSmooth[T SignedDistance](d1, d2 T, size float32) T {
	h := vecf.Clamp(0.5+0.5*(d2.Distance()-d1.Distance())/size, 0, 1)
	newD := d2.Lerp(d1, h).(T)
	return newD.WithDistance(newD.Distance() - size*h*(1-h)).(T)
}

// SDOpSubtractSmooth is the polynomial-smooth subtraction: d1's shape
// carved out of d2's, like SDOpSubtract.
func SDOpSubtractSmooth[T SignedDistance](d1, d2 T, size float32) T {
	h := vecf.Clamp(0.5-0.5*(d2.Distance()+d1.Distance())/size, 0, 1)
	negD1 := d1.WithDistance(-d1.Distance()).(T)
	newD := d2.Lerp(negD1, h).(T)
	return newD.WithDistance(size*h*(1-h) + newD.Distance()).(T)
}

// SDOpIntersectSmooth is the polynomial-smooth intersection.
func SDOpIntersectSmooth[T SignedDistance](d1, d2 T, size float32) T {
	h := vecf.Clamp(0.5-0.5*(d2.Distance()-d1.Distance())/size, 0, 1)
	newD := d2.Lerp(d1, h).(T)
	return newD.WithDistance(size*h*(1-h) + newD.Distance()).(T)
}
