// Package mesh defines the indexed triangle mesh output of the meshing pipeline
// and writes it out as Wavefront OBJ.
package mesh

import (
	"bufio"
	"fmt"
	"io"

	"github.com/taigrr/opensaft/pkg/vecf"
)

// TriangleMesh is an indexed triangle mesh with a per-vertex color in
// addition to position and normal.
type TriangleMesh struct {
	Indices   []uint32
	Positions []vecf.Vec3
	Normals   []vecf.Vec3
	Colors    []vecf.Vec3
}

// WriteOBJ writes the mesh as Wavefront OBJ text, with vertex colors
// appended after each position as the common (non-standard) "v x y z r
// g b" extension.
func (m *TriangleMesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if len(m.Positions) != len(m.Colors) {
		return fmt.Errorf("mesh: %d positions but %d colors", len(m.Positions), len(m.Colors))
	}
	if len(m.Positions) != len(m.Normals) {
		return fmt.Errorf("mesh: %d positions but %d normals", len(m.Positions), len(m.Normals))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %d indices is not a multiple of 3", len(m.Indices))
	}

	fmt.Fprintln(bw, "# Generated by the opensaft meshing pipeline")

	fmt.Fprintln(bw, "\n# Vertex positions and colors:")
	for i, p := range m.Positions {
		c := m.Colors[i]
		fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", p.X, p.Y, p.Z, c.X, c.Y, c.Z)
	}

	fmt.Fprintln(bw, "\n# Vertex normals:")
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}

	fmt.Fprintln(bw, "\n# Triangle faces:")
	for i := 0; i+2 < len(m.Indices); i += 3 {
		// OBJ indices are 1-based.
		fmt.Fprintf(bw, "f %d %d %d\n", m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1)
	}

	fmt.Fprintln(bw, "\n# End of file.")

	return bw.Flush()
}
