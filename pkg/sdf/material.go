// Package sdf implements the analytic signed-distance primitives and
// boolean combinators that the compiled bytecode program evaluates.
//
// Every function here is generic over SignedDistance so the same code
// path serves both a distance-only evaluation (used for meshing and ray
// marching) and a material-aware RGB+distance evaluation (used for
// vertex color gathering), without dynamic dispatch.
package sdf

import "github.com/taigrr/opensaft/pkg/vecf"

// Material describes the surface appearance applied by a Material node.
type Material struct {
	RGB vecf.Vec3
}

// NewMaterial creates a Material with the given RGB color.
func NewMaterial(rgb vecf.Vec3) Material {
	return Material{RGB: rgb}
}

// DefaultMaterial returns the material used when a sub-tree has no
// explicit Material node: opaque white.
func DefaultMaterial() Material {
	return Material{RGB: vecf.Splat3(1)}
}
