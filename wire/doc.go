// Package wire traces grid-walk wires and finds where two of them cross.
//
// What:
//
//   - A wire is described by tokens such as "R8" or "U5": a direction letter
//     (U, D, L, R) followed by a positive number of steps.
//   - Trace turns the tokens into a Polyline starting at the origin (0,0);
//     every consecutive pair of points is an axis-aligned Segment.
//   - Cross tests two segments for a strict interior crossing.
//   - Crossings scans every segment pair of two wires and records, for each
//     crossing, how far each wire walked to reach it.
//   - Nearest and Fewest reduce the crossings to the two classic answers:
//     closest by Manhattan distance, closest by combined walked distance.
//
// Why:
//
//   - Circuit-panel puzzles: find the crossing nearest to the central port.
//   - Signal timing: the crossing reached with the fewest combined steps.
//
// Quick ASCII example (R8,U5,L5,D3 against U7,R6,D4,L4):
//
//	.+-----+...
//	.|.....|...
//	.|..+--X-+.
//	.|..|..|.|.
//	.|.-X--+.|.
//	.|..|....|.
//	.|.......|.
//	.o-------+.
//
//	Nearest crossing (3,3): distance 6. Fewest steps (6,5): 15+15 = 30.
//
// Complexity:
//
//   - Trace:     O(k) time and memory for k tokens.
//   - Cross:     O(1).
//   - Crossings: O(m·n) time for wires with m and n segments; O(c) memory
//     for c crossings. ScanOptions.Workers > 1 splits the outer loop across
//     goroutines without changing the result order.
//
// Errors:
//
//   - ErrMalformedToken: unknown direction letter, a step count that is
//     not a positive decimal integer, or a wire longer than MaxLength steps.
//   - ErrNoIntersections: the two wires never cross.
//   - ErrBadWorkers: ScanOptions.Workers is negative.
//
// Touching at an endpoint, running along the same line, and the shared origin
// never count as crossings.
package wire
