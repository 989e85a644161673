package interpreter

import (
	"github.com/taigrr/opensaft/pkg/program"
	"github.com/taigrr/opensaft/pkg/sdf"
)

// NewScalarContext returns a Context that evaluates p to a bare
// distance, ignoring material entirely.
func NewScalarContext(p program.Program) *Context[sdf.ScalarDistance] {
	return NewContext[sdf.ScalarDistance](p, sdf.ScalarInfinity())
}

// NewRGBContext returns a Context that evaluates p to a distance plus
// the interpolated surface color, starting every primitive from the
// default (opaque white) material.
func NewRGBContext(p program.Program) *Context[sdf.RGBDistance] {
	defaultSD := sdf.RGBDistance{RGB: sdf.DefaultMaterial().RGB, D: 0}
	return NewContext[sdf.RGBDistance](p, defaultSD)
}
