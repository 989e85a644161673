// Package pipeline drives the end-to-end path from a graph (or a
// compiled program, or a bare distance function) to a triangle mesh:
// choosing a bounding box and grid resolution, filling the grid,
// polygonizing it, and mapping the result into world space with
// gathered vertex colors.
package pipeline

// MeshOptions controls the resolution of the sampling grid used to mesh
// a field.
type MeshOptions struct {
	// MeanResolution is the desired mean resolution across the three
	// axes; the total cell count will be close to MeanResolution^3.
	MeanResolution float32

	// MaxResolution and MinResolution clamp the per-axis resolution
	// derived from MeanResolution, since fitting the mean resolution to
	// a very elongated box can otherwise produce extreme values on the
	// short axes.
	MaxResolution float32
	MinResolution float32
}

// DefaultMeshOptions is a reasonably detailed mesh.
func DefaultMeshOptions() MeshOptions {
	return MeshOptions{MeanResolution: 64, MaxResolution: 128, MinResolution: 8}
}

// LowMeshOptions is a coarser, faster mesh.
func LowMeshOptions() MeshOptions {
	return MeshOptions{MeanResolution: 32, MaxResolution: 64, MinResolution: 8}
}
