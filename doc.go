// Package gravassist collects solvers for four small spacecraft puzzles,
// from rocket fuel to crossed wires on a circuit panel.
//
// What is in here?
//
//	Each solver is an independent package; none imports another:
//		• fuel     — module fuel, with and without fuel-for-fuel
//		• intcode  — the add/multiply/halt machine and noun/verb search
//		• wire     — grid-walk wires, strict crossings, nearest by distance and steps
//		• passcode — digit-rule password counting over a range
//		• input    — line and comma readers for the puzzle input files
//
// The gravassist command (cmd/gravassist) wires them to files, a YAML config
// and structured logging:
//
//	gravassist wires day_3_input.txt
//	gravassist passcode 256310-732736
//
// The wire package is the one with real geometry; start there.
package gravassist
