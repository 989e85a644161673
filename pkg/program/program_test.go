package program

import (
	"math"
	"testing"
)

func TestOpcodeValid(t *testing.T) {
	if !OpPlane.Valid() {
		t.Error("OpPlane should be valid")
	}
	if !OpCone.Valid() {
		t.Error("OpCone (last opcode) should be valid")
	}
	if Opcode(maxOpcode + 1).Valid() {
		t.Error("one past the last opcode should not be valid")
	}
}

func TestOpcodeString(t *testing.T) {
	if got := OpSphere.String(); got != "Sphere" {
		t.Errorf("OpSphere.String() = %q, want %q", got, "Sphere")
	}
	if got := Opcode(9999).String(); got != "Unknown" {
		t.Errorf("unknown opcode String() = %q, want %q", got, "Unknown")
	}
}

func TestAsRawAndProgramFromRawRoundTrip(t *testing.T) {
	p := Program{
		Opcodes:   []Opcode{OpSphere, OpEnd},
		Constants: []float32{1, 2, 3, 4},
	}
	rawOps, rawConsts := p.AsRaw()

	got, err := ProgramFromRaw(rawOps, rawConsts)
	if err != nil {
		t.Fatalf("ProgramFromRaw: %v", err)
	}
	if len(got.Opcodes) != len(p.Opcodes) || got.Opcodes[0] != p.Opcodes[0] {
		t.Errorf("round-tripped opcodes = %v, want %v", got.Opcodes, p.Opcodes)
	}
	for i, c := range got.Constants {
		if c != p.Constants[i] {
			t.Errorf("round-tripped constants = %v, want %v", got.Constants, p.Constants)
			break
		}
	}
}

func TestProgramFromRawRejectsUnknownOpcode(t *testing.T) {
	_, err := ProgramFromRaw([]uint32{9999}, nil)
	if err == nil {
		t.Fatal("expected error for unknown opcode")
	}
	if _, ok := err.(ErrUnknownOpcode); !ok {
		t.Errorf("expected ErrUnknownOpcode, got %T", err)
	}
}

func TestHashesAreStableAndSensitiveToContent(t *testing.T) {
	a := Program{Opcodes: []Opcode{OpSphere, OpEnd}, Constants: []float32{1, 2}}
	b := Program{Opcodes: []Opcode{OpSphere, OpEnd}, Constants: []float32{1, 2}}
	c := Program{Opcodes: []Opcode{OpSphere, OpEnd}, Constants: []float32{1, 3}}

	if a.FullHash() != b.FullHash() {
		t.Error("identical programs should hash identically")
	}
	if a.FullHash() == c.FullHash() {
		t.Error("programs differing in constants should hash differently")
	}
	if a.OpcodesHash() != b.OpcodesHash() {
		t.Error("identical opcode streams should hash identically")
	}
}

func TestConstantsHashDistinguishesSignedZero(t *testing.T) {
	a := Program{Constants: []float32{0.0}}
	b := Program{Constants: []float32{float32(math.Copysign(0, -1))}}
	if a.ConstantsHash() == b.ConstantsHash() {
		t.Error("0.0 and -0.0 should hash differently (bit-pattern hashing)")
	}
}

func TestWithConstants(t *testing.T) {
	p := Program{Opcodes: []Opcode{OpEnd}, Constants: []float32{1, 2, 3}}
	got := p.WithConstants([]float32{4, 5, 6})
	if got.Constants[0] != 4 || got.Constants[2] != 6 {
		t.Errorf("WithConstants = %v, want [4 5 6]", got.Constants)
	}
	if p.Constants[0] != 1 {
		t.Error("WithConstants should not mutate the receiver's backing array observably")
	}
}
