package pipeline

import (
	"github.com/taigrr/opensaft/pkg/math3d"
	"github.com/taigrr/opensaft/pkg/mesh"
	"github.com/taigrr/opensaft/pkg/models"
)

// ToModelsMesh adapts a meshed CSG field into the viewer's native mesh
// type, so it can be driven through the existing rasterizer/terminal
// stack alongside loaded OBJ/glTF assets. The per-vertex colors gathered
// by GatherColorsInPlace (the graph's material colors, sampled at each
// surface vertex) are carried into models.MeshVertex.Color, so the
// viewer's render.DrawMeshVertexColorGouraud path can show the CSG
// scene's own materials instead of a flat color or an unrelated texture.
func ToModelsMesh(name string, m *mesh.TriangleMesh) *models.Mesh {
	out := models.NewMesh(name)
	out.Vertices = make([]models.MeshVertex, len(m.Positions))
	for i, p := range m.Positions {
		var n math3d.Vec3
		if i < len(m.Normals) {
			n = math3d.V3(float64(m.Normals[i].X), float64(m.Normals[i].Y), float64(m.Normals[i].Z))
		}
		var c math3d.Vec3
		if i < len(m.Colors) {
			c = math3d.V3(float64(m.Colors[i].X), float64(m.Colors[i].Y), float64(m.Colors[i].Z))
		}
		out.Vertices[i] = models.MeshVertex{
			Position: math3d.V3(float64(p.X), float64(p.Y), float64(p.Z)),
			Normal:   n,
			Color:    c,
		}
	}

	out.Faces = make([]models.Face, len(m.Indices)/3)
	for i := range out.Faces {
		out.Faces[i] = models.Face{V: [3]int{
			int(m.Indices[i*3]),
			int(m.Indices[i*3+1]),
			int(m.Indices[i*3+2]),
		}}
	}

	out.CalculateBounds()
	return out
}
