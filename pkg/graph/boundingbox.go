// Package graph implements the CSG scene graph: a DAG of primitive and
// combinator nodes that can be linearized into a bytecode Program by
// pkg/compiler, or queried directly for its world-space bounding box.
package graph

import (
	"math"

	"github.com/taigrr/opensaft/pkg/vecf"
)

// BoundingBox is an axis-aligned bounding box in world space.
type BoundingBox struct {
	Min, Max vecf.Vec3
}

// Everything returns a bounding box spanning all of space.
func Everything() BoundingBox {
	inf := float32(math.Inf(1))
	return BoundingBox{Min: vecf.Splat3(-inf), Max: vecf.Splat3(inf)}
}

// Nothing returns an empty bounding box (the identity for Union).
func Nothing() BoundingBox {
	inf := float32(math.Inf(1))
	return BoundingBox{Min: vecf.Splat3(inf), Max: vecf.Splat3(-inf)}
}

// FromCenterSize builds a bounding box from its center and full size.
func FromCenterSize(center, size vecf.Vec3) BoundingBox {
	half := size.Scale(0.5)
	return BoundingBox{Min: center.Sub(half), Max: center.Add(half)}
}

// FromMinMax builds a bounding box from explicit min/max corners.
func FromMinMax(min, max vecf.Vec3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// Size returns the full extent of the box along each axis.
func (b BoundingBox) Size() vecf.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() vecf.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Volume returns the product of the box's extents.
func (b BoundingBox) Volume() float32 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// IsFinite reports whether every component of Min and Max is finite.
func (b BoundingBox) IsFinite() bool {
	for _, v := range []float32{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z} {
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			return false
		}
	}
	return true
}

// Union returns the smallest box containing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Intersection returns the overlap of b and other. The result may have
// Min > Max on some axis if the boxes don't overlap there.
func (b BoundingBox) Intersection(other BoundingBox) BoundingBox {
	return BoundingBox{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}
}

// Expanded grows the box by amount on every side.
func (b BoundingBox) Expanded(amount vecf.Vec3) BoundingBox {
	return BoundingBox{Min: b.Min.Sub(amount), Max: b.Max.Add(amount)}
}

// Translated shifts the box by offset.
func (b BoundingBox) Translated(offset vecf.Vec3) BoundingBox {
	return BoundingBox{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// RotatedAroundOrigin returns the bounding box of this box after every
// point in it is rotated by q around the origin: the 8 corners are
// rotated and a new axis-aligned box is fit around them.
func (b BoundingBox) RotatedAroundOrigin(q vecf.Quat) BoundingBox {
	corners := [8]vecf.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}

	rotated := q.RotateVec3(corners[0])
	newMin, newMax := rotated, rotated
	for i := 1; i < len(corners); i++ {
		rotated = q.RotateVec3(corners[i])
		newMin = newMin.Min(rotated)
		newMax = newMax.Max(rotated)
	}
	return BoundingBox{Min: newMin, Max: newMax}
}
