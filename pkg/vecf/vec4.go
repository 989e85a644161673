package vecf

// Vec4 represents a 4D vector (or a plane equation, in the Plane
// primitive's case: xyz is the normal, w is the offset).
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 creates a new Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from a Vec3 with the given W.
func V4FromV3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Truncate is an alias for Vec3, matching the glam naming the
// interpreter's reference implementation uses for plane.xyz.
func (v Vec4) Truncate() Vec3 {
	return v.Vec3()
}

// Dot returns the dot product a · b.
func (a Vec4) Dot(b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec4) Lerp(b Vec4, t float32) Vec4 {
	return Vec4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}
