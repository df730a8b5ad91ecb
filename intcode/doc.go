// Package intcode runs programs for the two-opcode Intcode machine.
//
// What:
//
//   - Memory is a flat []int; the instruction pointer starts at address 0.
//   - Opcode 1 adds, opcode 2 multiplies: both read three parameters (two
//     input addresses, one output address) and advance the pointer by 4.
//   - Opcode 99 halts.
//   - RunWith patches the noun (address 1) and verb (address 2) on a copy of
//     the program and returns the value left at address 0.
//   - Search finds the first noun/verb pair producing a target output.
//
// The pointer only moves forward, so every run terminates.
//
// Errors:
//
//   - ErrUnknownOpcode: an opcode other than 1, 2 or 99.
//   - ErrAddress: a parameter or the pointer itself leaves memory.
//   - ErrNoSolution: no noun/verb pair reaches the target.
package intcode
