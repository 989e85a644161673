package compiler

import (
	"testing"

	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/program"
	"github.com/taigrr/opensaft/pkg/vecf"
)

// recompileMatches asserts that recompiling a decompiled program
// produces byte-identical opcodes and constants to the original.
func recompileMatches(t *testing.T, original program.Program) {
	t.Helper()

	g, root, err := Decompile(original)
	if err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	got := Compile(g, root)

	if len(got.Opcodes) != len(original.Opcodes) {
		t.Fatalf("opcodes = %v, want %v", got.Opcodes, original.Opcodes)
	}
	for i := range original.Opcodes {
		if got.Opcodes[i] != original.Opcodes[i] {
			t.Errorf("opcodes[%d] = %v, want %v", i, got.Opcodes[i], original.Opcodes[i])
		}
	}
	if len(got.Constants) != len(original.Constants) {
		t.Fatalf("constants = %v, want %v", got.Constants, original.Constants)
	}
	for i := range original.Constants {
		if got.Constants[i] != original.Constants[i] {
			t.Errorf("constants[%d] = %v, want %v", i, got.Constants[i], original.Constants[i])
		}
	}
}

func TestDecompileRoundTripSimpleShapes(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.V3(1, 2, 3), 4)
	recompileMatches(t, Compile(g, s))
}

func TestDecompileRoundTripCombinators(t *testing.T) {
	g := graph.NewGraph()
	a := g.Sphere(vecf.Zero3(), 1)
	b := g.Capsule([2]vecf.Vec3{vecf.V3(-1, 0, 0), vecf.V3(1, 0, 0)}, 0.5)

	for _, root := range []graph.NodeID{
		g.OpUnion(a, b),
		g.OpSubtract(a, b),
		g.OpIntersect(a, b),
		g.OpUnionSmooth(a, b, 0.3),
		g.OpSubtractSmooth(a, b, 0.3),
		g.OpIntersectSmooth(a, b, 0.3),
	} {
		recompileMatches(t, Compile(g, root))
	}
}

func TestDecompileRoundTripTransforms(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.Zero3(), 1)
	translated := g.OpTranslate(s, vecf.V3(1, 2, 3))
	rotated := g.OpRotate(translated, vecf.QuatFromRotationY(0.7))
	scaled := g.OpScale(rotated, 2.5)

	recompileMatches(t, Compile(g, scaled))
}

func TestDecompileRoundTripTorusSector(t *testing.T) {
	g := graph.NewGraph()
	ts := g.TorusSector(2, 0.5, 1.1)
	recompileMatches(t, Compile(g, ts))
}

func TestDecompileRoundTripMaterial(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.Zero3(), 1)
	colored := g.OpRGB(s, vecf.V3(0.2, 0.4, 0.6))
	recompileMatches(t, Compile(g, colored))
}

func TestDecompileRoundTripFullExampleScene(t *testing.T) {
	g := graph.NewGraph()
	root := g.Example(graph.DefaultExampleParams())
	recompileMatches(t, Compile(g, root))
}

func TestDecompileRejectsMissingEnd(t *testing.T) {
	p := program.Program{Opcodes: []program.Opcode{program.OpSphere}, Constants: []float32{0, 0, 0, 1}}
	_, _, err := Decompile(p)
	if err == nil {
		t.Fatal("expected error for program missing OpEnd")
	}
}

func TestDecompileRejectsStackUnderflow(t *testing.T) {
	p := program.Program{Opcodes: []program.Opcode{program.OpUnion, program.OpEnd}}
	_, _, err := Decompile(p)
	if err == nil {
		t.Fatal("expected error for combinator with nothing on the stack")
	}
}

func TestDecompileRejectsExtraNodesLeftOnStack(t *testing.T) {
	p := program.Program{
		Opcodes:   []program.Opcode{program.OpSphere, program.OpSphere, program.OpEnd},
		Constants: []float32{0, 0, 0, 1, 0, 0, 0, 1},
	}
	_, _, err := Decompile(p)
	if err == nil {
		t.Fatal("expected error for two roots left on the node stack")
	}
}

func TestDecompileRejectsUnusedConstants(t *testing.T) {
	p := program.Program{
		Opcodes:   []program.Opcode{program.OpSphere, program.OpEnd},
		Constants: []float32{0, 0, 0, 1, 99},
	}
	_, _, err := Decompile(p)
	if err == nil {
		t.Fatal("expected error for leftover constants")
	}
}

func TestDecompileRejectsDanglingTransform(t *testing.T) {
	p := program.Program{
		Opcodes:   []program.Opcode{program.OpPushTranslation, program.OpSphere, program.OpEnd},
		Constants: []float32{1, 2, 3, 0, 0, 0, 1},
	}
	_, _, err := Decompile(p)
	if err == nil {
		t.Fatal("expected error for a pushed transform never popped")
	}
}

func TestDecompileRejectsUnknownOpcode(t *testing.T) {
	p := program.Program{Opcodes: []program.Opcode{program.Opcode(9999), program.OpEnd}}
	_, _, err := Decompile(p)
	if err == nil {
		t.Fatal("expected error for unknown opcode")
	}
}
