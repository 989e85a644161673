package pipeline

import (
	"testing"

	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/mesh"
	"github.com/taigrr/opensaft/pkg/vecf"
)

func TestChunkBoundsCoversRangeExactlyOnce(t *testing.T) {
	const n = 37
	bounds := chunkBounds(n)

	seen := make([]bool, n)
	for _, b := range bounds {
		for i := b[0]; i < b[1]; i++ {
			if seen[i] {
				t.Fatalf("index %d covered by more than one chunk", i)
			}
			seen[i] = true
		}
	}
	for i, s := range seen {
		if !s {
			t.Errorf("index %d not covered by any chunk", i)
		}
	}
}

func TestChunkBoundsHandlesEmptyAndSingleton(t *testing.T) {
	if got := chunkBounds(0); len(got) != 0 {
		t.Errorf("chunkBounds(0) = %v, want empty", got)
	}
	got := chunkBounds(1)
	if len(got) != 1 || got[0] != [2]int{0, 1} {
		t.Errorf("chunkBounds(1) = %v, want [[0 1]]", got)
	}
}

func TestTransformPositionsInPlaceAppliesToEveryVertex(t *testing.T) {
	m := &mesh.TriangleMesh{
		Positions: []vecf.Vec3{vecf.V3(0, 0, 0), vecf.V3(1, 1, 1), vecf.V3(2, 2, 2)},
	}
	TransformPositionsInPlace(m, func(p vecf.Vec3) vecf.Vec3 { return p.Scale(2).Add(vecf.V3(1, 0, 0)) })

	want := []vecf.Vec3{vecf.V3(1, 0, 0), vecf.V3(3, 2, 2), vecf.V3(5, 4, 4)}
	for i, w := range want {
		if m.Positions[i] != w {
			t.Errorf("position[%d] = %v, want %v", i, m.Positions[i], w)
		}
	}
}

func TestGatherColorsInPlaceSamplesEveryVertex(t *testing.T) {
	m := &mesh.TriangleMesh{
		Positions: []vecf.Vec3{vecf.V3(0, 0, 0), vecf.V3(1, 0, 0), vecf.V3(2, 0, 0)},
	}
	GatherColorsInPlace(m, func(p vecf.Vec3) vecf.Vec3 { return vecf.V3(p.X, 0, 0) })

	if len(m.Colors) != len(m.Positions) {
		t.Fatalf("colors length %d, want %d", len(m.Colors), len(m.Positions))
	}
	for i, c := range m.Colors {
		if c.X != m.Positions[i].X {
			t.Errorf("color[%d].X = %v, want %v", i, c.X, m.Positions[i].X)
		}
	}
}

func TestSDFBBAndResolutionRespectsMeanResolutionForACube(t *testing.T) {
	bb := graph.BoundingBox{Min: vecf.V3(-1, -1, -1), Max: vecf.V3(1, 1, 1)}
	opt := MeshOptions{MeanResolution: 64, MaxResolution: 128, MinResolution: 8}

	_, resolution := SDFBBAndResolution(bb, opt)
	for i, r := range resolution {
		if r < 40 || r > 90 {
			t.Errorf("resolution[%d] = %d, want roughly near MeanResolution (64) for a cube", i, r)
		}
	}
}

func TestSDFBBAndResolutionMinOverrulesMax(t *testing.T) {
	// A very flat box: the short Z axis would want a tiny resolution,
	// but MinResolution forces it up, which in turn must blow the
	// other axes' resolutions past MaxResolution (min overrules max).
	bb := graph.BoundingBox{Min: vecf.V3(-50, -50, -0.1), Max: vecf.V3(50, 50, 0.1)}
	opt := MeshOptions{MeanResolution: 64, MaxResolution: 128, MinResolution: 8}

	_, resolution := SDFBBAndResolution(bb, opt)
	for i, r := range resolution {
		if r < opt.MinResolution {
			t.Errorf("resolution[%d] = %d, want >= MinResolution (%v)", i, r, opt.MinResolution)
		}
	}
}

func TestSDFBBAndResolutionPanicsOnDegenerateBox(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a zero-volume bounding box")
		}
	}()
	bb := graph.BoundingBox{Min: vecf.Zero3(), Max: vecf.Zero3()}
	SDFBBAndResolution(bb, DefaultMeshOptions())
}

func TestMeshFromSDFProducesVerticesNearSphereSurface(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.Zero3(), 3)

	tm, err := MeshFromSDF(g, s, LowMeshOptions())
	if err != nil {
		t.Fatalf("MeshFromSDF: %v", err)
	}
	if len(tm.Positions) == 0 {
		t.Fatal("expected a non-empty mesh for a sphere")
	}
	if len(tm.Positions) != len(tm.Colors) || len(tm.Positions) != len(tm.Normals) {
		t.Fatalf("positions=%d normals=%d colors=%d should all match", len(tm.Positions), len(tm.Normals), len(tm.Colors))
	}
	for i, p := range tm.Positions {
		d := p.Len()
		if d < 2.5 || d > 3.5 {
			t.Errorf("vertex %d at %v is %v from origin, want close to radius 3", i, p, d)
		}
	}
}

func TestSurfaceDistanceToMatchesAnalyticSphere(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.Zero3(), 2)

	d := SurfaceDistanceTo(g, s, vecf.V3(5, 0, 0))
	if d < 2.9 || d > 3.1 {
		t.Errorf("SurfaceDistanceTo = %v, want ~3", d)
	}
}

func TestToModelsMeshCarriesPositionsAndFaces(t *testing.T) {
	tm := &mesh.TriangleMesh{
		Positions: []vecf.Vec3{vecf.V3(0, 0, 0), vecf.V3(1, 0, 0), vecf.V3(0, 1, 0)},
		Normals:   []vecf.Vec3{vecf.V3(0, 0, 1), vecf.V3(0, 0, 1), vecf.V3(0, 0, 1)},
		Indices:   []uint32{0, 1, 2},
	}
	out := ToModelsMesh("test", tm)
	if len(out.Vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(out.Vertices))
	}
	if len(out.Faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(out.Faces))
	}
	if out.Faces[0].V != [3]int{0, 1, 2} {
		t.Errorf("face indices = %v, want [0 1 2]", out.Faces[0].V)
	}
}

func TestToModelsMeshCarriesVertexColor(t *testing.T) {
	tm := &mesh.TriangleMesh{
		Positions: []vecf.Vec3{vecf.V3(0, 0, 0), vecf.V3(1, 0, 0), vecf.V3(0, 1, 0)},
		Normals:   []vecf.Vec3{vecf.V3(0, 0, 1), vecf.V3(0, 0, 1), vecf.V3(0, 0, 1)},
		Colors:    []vecf.Vec3{vecf.V3(1, 0, 0), vecf.V3(0, 1, 0), vecf.V3(0, 0, 1)},
		Indices:   []uint32{0, 1, 2},
	}
	out := ToModelsMesh("test", tm)
	for i, want := range tm.Colors {
		got := out.GetVertexColor(i)
		if got.X != float64(want.X) || got.Y != float64(want.Y) || got.Z != float64(want.Z) {
			t.Errorf("vertex %d color = %v, want %v", i, got, want)
		}
	}
}
