package compiler

import (
	"strings"
	"testing"

	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/program"
	"github.com/taigrr/opensaft/pkg/vecf"
)

func TestDisassembleSphereMentionsOpcodeAndConstants(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.V3(1, 2, 3), 4)
	p := Compile(g, s)

	text, err := Disassemble(p)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if !strings.Contains(text, "Sphere") {
		t.Errorf("disassembly %q does not mention Sphere", text)
	}
	if !strings.Contains(text, "End") {
		t.Errorf("disassembly %q does not mention End", text)
	}
}

func TestDisassembleFullExampleSceneDoesNotError(t *testing.T) {
	g := graph.NewGraph()
	root := g.Example(graph.DefaultExampleParams())
	p := Compile(g, root)

	text, err := Disassemble(p)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if text == "" {
		t.Error("expected non-empty disassembly")
	}
}

func TestDisassembleRejectsUnusedConstants(t *testing.T) {
	p := program.Program{
		Opcodes:   []program.Opcode{program.OpSphere, program.OpEnd},
		Constants: []float32{0, 0, 0, 1, 99},
	}
	_, err := Disassemble(p)
	if err == nil {
		t.Fatal("expected error for leftover constants")
	}
}
