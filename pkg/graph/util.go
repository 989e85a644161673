package graph

import "math"

func sincos64(v float64) (sin, cos float64) {
	return math.Sincos(v)
}
