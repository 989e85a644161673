package mesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/taigrr/opensaft/pkg/vecf"
)

func sampleMesh() *TriangleMesh {
	return &TriangleMesh{
		Indices:   []uint32{0, 1, 2},
		Positions: []vecf.Vec3{vecf.V3(0, 0, 0), vecf.V3(1, 0, 0), vecf.V3(0, 1, 0)},
		Normals:   []vecf.Vec3{vecf.V3(0, 0, 1), vecf.V3(0, 0, 1), vecf.V3(0, 0, 1)},
		Colors:    []vecf.Vec3{vecf.V3(1, 1, 1), vecf.V3(1, 1, 1), vecf.V3(1, 1, 1)},
	}
}

func TestWriteOBJProducesExpectedSections(t *testing.T) {
	m := sampleMesh()
	var buf bytes.Buffer
	if err := m.WriteOBJ(&buf); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	out := buf.String()

	if strings.Count(out, "\nv ") != len(m.Positions) || !strings.HasPrefix(out, "# Generated") {
		t.Errorf("expected one vertex line per position after the header comment, got:\n%s", out)
	}
	if !strings.Contains(out, "vn 0 0 1") {
		t.Errorf("expected a normal line, got:\n%s", out)
	}
	if !strings.Contains(out, "f 1 2 3") {
		t.Errorf("expected a 1-based face line, got:\n%s", out)
	}
}

func TestWriteOBJRejectsMismatchedColorCount(t *testing.T) {
	m := sampleMesh()
	m.Colors = m.Colors[:1]
	var buf bytes.Buffer
	if err := m.WriteOBJ(&buf); err == nil {
		t.Fatal("expected error for mismatched color count")
	}
}

func TestWriteOBJRejectsMismatchedNormalCount(t *testing.T) {
	m := sampleMesh()
	m.Normals = m.Normals[:2]
	var buf bytes.Buffer
	if err := m.WriteOBJ(&buf); err == nil {
		t.Fatal("expected error for mismatched normal count")
	}
}

func TestWriteOBJRejectsIndicesNotMultipleOfThree(t *testing.T) {
	m := sampleMesh()
	m.Indices = append(m.Indices, 0)
	var buf bytes.Buffer
	if err := m.WriteOBJ(&buf); err == nil {
		t.Fatal("expected error for indices not a multiple of 3")
	}
}

func TestWriteOBJOnEmptyMeshProducesNoFaceOrVertexLines(t *testing.T) {
	m := &TriangleMesh{}
	var buf bytes.Buffer
	if err := m.WriteOBJ(&buf); err != nil {
		t.Fatalf("WriteOBJ on empty mesh: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "\nv ") || strings.Contains(out, "\nf ") {
		t.Errorf("expected no vertex/face lines for an empty mesh, got:\n%s", out)
	}
}
