package intcode

import "errors"

var (
	// ErrUnknownOpcode indicates an opcode other than 1, 2 or 99.
	ErrUnknownOpcode = errors.New("intcode: unknown opcode")
	// ErrAddress indicates an address outside memory, including running past
	// the end of the program without reaching a halt.
	ErrAddress = errors.New("intcode: address out of range")
	// ErrNoSolution indicates Search exhausted every noun/verb pair.
	ErrNoSolution = errors.New("intcode: no noun/verb pair produces the target")
	// ErrShortProgram indicates a program too short to hold a noun and verb.
	ErrShortProgram = errors.New("intcode: program needs at least 3 values")
)
