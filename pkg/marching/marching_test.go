package marching

import (
	"testing"

	"github.com/taigrr/opensaft/pkg/grid"
	"github.com/taigrr/opensaft/pkg/sdf"
	"github.com/taigrr/opensaft/pkg/vecf"
)

func sphereGrid(size grid.Index3, radius float32) *grid.Grid3[sdf.ScalarDistance] {
	center := vecf.V3(float32(size[0])/2, float32(size[1])/2, float32(size[2])/2)
	g := grid.NewGrid3[sdf.ScalarDistance](size)
	g.Fill(func(p grid.Index3) sdf.ScalarDistance {
		pos := vecf.V3(float32(p[0]), float32(p[1]), float32(p[2]))
		return sdf.ScalarDistance(sdf.SDSphere(pos, center, radius))
	})
	return g
}

func TestPolygonizeTooSmallGridReturnsEmpty(t *testing.T) {
	g := grid.NewGrid3[sdf.ScalarDistance](grid.Index3{1, 1, 1})
	result := Polygonize(g)
	if len(result.Positions) != 0 || len(result.Indices) != 0 {
		t.Errorf("expected empty result for a 1x1x1 grid, got %d vertices, %d indices", len(result.Positions), len(result.Indices))
	}
}

func TestPolygonizeEntirelyOutsideFieldReturnsEmpty(t *testing.T) {
	size := grid.Index3{8, 8, 8}
	g := grid.NewGrid3[sdf.ScalarDistance](size)
	g.Fill(func(p grid.Index3) sdf.ScalarDistance { return sdf.ScalarDistance(100) })

	result := Polygonize(g)
	if len(result.Indices) != 0 {
		t.Errorf("expected no triangles when every sample is far outside, got %d", len(result.Indices))
	}
}

func TestPolygonizeSphereProducesWellFormedIndexedMesh(t *testing.T) {
	size := grid.Index3{20, 20, 20}
	g := sphereGrid(size, 6)

	result := Polygonize(g)
	if len(result.Indices) == 0 {
		t.Fatal("expected a non-empty triangle mesh for a sphere crossing the grid")
	}
	if len(result.Indices)%3 != 0 {
		t.Errorf("index count %d is not a multiple of 3", len(result.Indices))
	}
	if len(result.Positions) != len(result.Normals) {
		t.Errorf("positions (%d) and normals (%d) length mismatch", len(result.Positions), len(result.Normals))
	}
	for _, idx := range result.Indices {
		if int(idx) >= len(result.Positions) {
			t.Fatalf("index %d out of range for %d positions", idx, len(result.Positions))
		}
	}

	// Welding must actually reduce the vertex count well below the
	// unwelded triangle-soup size (3 per triangle).
	if soupSize := len(result.Indices); len(result.Positions) >= soupSize {
		t.Errorf("expected deduplication: %d positions for %d triangle-corners", len(result.Positions), soupSize)
	}

	center := vecf.V3(10, 10, 10)
	for i, p := range result.Positions {
		d := p.Sub(center).Len()
		if d < 5 || d > 7 {
			t.Errorf("vertex %d at %v is %v from center, want close to radius 6", i, p, d)
		}
		n := result.Normals[i]
		if float32(0.9) > n.LenSq() || n.LenSq() > 1.1 {
			t.Errorf("vertex %d normal %v is not unit-length (lenSq=%v)", i, n, n.LenSq())
		}
	}
}

func TestPolygonizeNormalsPointOutwardFromSphereCenter(t *testing.T) {
	size := grid.Index3{20, 20, 20}
	g := sphereGrid(size, 6)
	result := Polygonize(g)

	center := vecf.V3(10, 10, 10)
	for i, p := range result.Positions {
		outward := p.Sub(center).Normalize()
		n := result.Normals[i]
		if dot := outward.Dot(n); dot < 0.5 {
			t.Errorf("vertex %d normal %v does not point outward (dot=%v)", i, n, dot)
		}
	}
}

// edgeKey is an undirected edge between two vertex indices, normalized
// so (a,b) and (b,a) hash the same.
type edgeKey struct{ a, b uint32 }

func newEdgeKey(a, b uint32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

func TestPolygonizeSphereProducesAClosedMesh(t *testing.T) {
	size := grid.Index3{20, 20, 20}
	g := sphereGrid(size, 6)
	result := Polygonize(g)

	counts := make(map[edgeKey]int)
	for i := 0; i+2 < len(result.Indices); i += 3 {
		a, b, c := result.Indices[i], result.Indices[i+1], result.Indices[i+2]
		counts[newEdgeKey(a, b)]++
		counts[newEdgeKey(b, c)]++
		counts[newEdgeKey(c, a)]++
	}
	if len(counts) == 0 {
		t.Fatal("expected a non-empty mesh")
	}
	for e, n := range counts {
		if n != 2 {
			t.Errorf("edge %v appears in %d triangles, want exactly 2 for a closed mesh", e, n)
		}
	}
}
