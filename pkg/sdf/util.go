package sdf

import "math"

var inf32 = float32(math.Inf(1))

func isInf32(v float32) bool {
	return math.IsInf(float64(v), 0)
}

func isNaN32(v float32) bool {
	return math.IsNaN(float64(v))
}
