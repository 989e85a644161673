// Package compiler linearizes a pkg/graph.Graph into a pkg/program.Program
// (Compile) and reconstructs an equivalent Graph from a Program
// (Decompile), along with a human-readable Disassemble.
package compiler

import "fmt"

// ErrorKind discriminates the taxonomy of compiler/decompiler failures.
type ErrorKind int

const (
	// BadProgram means the opcode stream itself is malformed: an
	// unknown opcode, a missing End, or constants left unconsumed.
	BadProgram ErrorKind = iota
	// BadConstants means the constant pool ran out before an opcode
	// finished reading the constants it needed.
	BadConstants
	// BadStack means a combinator, material or transform pop found its
	// stack empty, or decompilation finished with something other than
	// exactly one value left on the node stack, or a non-empty
	// transform stack.
	BadStack
	// EvaluatedToNaN means evaluating the program at some or all
	// sample points produced a non-finite distance.
	EvaluatedToNaN
)

// Error is returned by Decompile/Disassemble and by the pipeline
// package when evaluation goes wrong.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	switch e.Kind {
	case BadProgram:
		return fmt.Sprintf("bad program: %s", e.Msg)
	case BadConstants:
		return "bad constants: ran out of constants"
	case BadStack:
		return fmt.Sprintf("bad stack: %s", e.Msg)
	case EvaluatedToNaN:
		return "program evaluated to NaN"
	default:
		return "unknown compiler error"
	}
}

func errBadProgram(msg string) error { return &Error{Kind: BadProgram, Msg: msg} }
func errBadConstants() error         { return &Error{Kind: BadConstants} }
func errBadStack(msg string) error   { return &Error{Kind: BadStack, Msg: msg} }

// ErrEvaluatedToNaN is returned by pkg/pipeline when a sampled grid
// contains a non-finite value.
var ErrEvaluatedToNaN = &Error{Kind: EvaluatedToNaN}
