package program

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Program is a linearized, post-order bytecode program: a flat opcode
// stream plus the flat constant pool those opcodes read from in order.
// It is produced by pkg/compiler.Compile and consumed by
// pkg/interpreter.Interpret.
type Program struct {
	Opcodes   []Opcode
	Constants []float32
}

// WithConstants returns a copy of p with its constant pool replaced.
// len(constants) must match len(p.Constants) for the program to remain
// well-formed.
func (p Program) WithConstants(constants []float32) Program {
	p.Constants = constants
	return p
}

// ConstantsHash returns a stable hash of the constant pool, treating
// each float32 by its bit pattern so that -0.0 and 0.0 hash differently,
// matching strict bit-for-bit program comparison.
func (p Program) ConstantsHash() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, c := range p.Constants {
		bits := math.Float32bits(c)
		buf[0] = byte(bits)
		buf[1] = byte(bits >> 8)
		buf[2] = byte(bits >> 16)
		buf[3] = byte(bits >> 24)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// OpcodesHash returns a stable hash of the opcode stream.
func (p Program) OpcodesHash() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, op := range p.Opcodes {
		v := uint32(op)
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// FullHash combines ConstantsHash and OpcodesHash.
func (p Program) FullHash() uint64 {
	return p.ConstantsHash() ^ p.OpcodesHash()
}

// AsRaw exposes the program as plain u32 opcodes and f32 constants, for
// storage or transmission in a wire format that doesn't know about the
// Opcode type.
func (p Program) AsRaw() ([]uint32, []float32) {
	raw := make([]uint32, len(p.Opcodes))
	for i, op := range p.Opcodes {
		raw[i] = uint32(op)
	}
	constants := make([]float32, len(p.Constants))
	copy(constants, p.Constants)
	return raw, constants
}

// ErrUnknownOpcode is returned by ProgramFromRaw when a raw u32 does not
// correspond to a known Opcode.
type ErrUnknownOpcode struct {
	Value uint32
}

func (e ErrUnknownOpcode) Error() string {
	return fmt.Sprintf("program: unknown opcode %d", e.Value)
}

// ProgramFromRaw validates and converts raw u32 opcodes back into a
// Program.
func ProgramFromRaw(opcodes []uint32, constants []float32) (Program, error) {
	ops := make([]Opcode, len(opcodes))
	for i, v := range opcodes {
		op := Opcode(v)
		if !op.Valid() {
			return Program{}, ErrUnknownOpcode{Value: v}
		}
		ops[i] = op
	}
	out := make([]float32, len(constants))
	copy(out, constants)
	return Program{Opcodes: ops, Constants: out}, nil
}
