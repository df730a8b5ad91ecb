package wire

import "strconv"

// Direction is one of the four grid directions a token can walk.
type Direction byte

const (
	// Up walks toward +Y.
	Up Direction = 'U'
	// Down walks toward -Y.
	Down Direction = 'D'
	// Left walks toward -X.
	Left Direction = 'L'
	// Right walks toward +X.
	Right Direction = 'R'
)

// Unit returns the unit vector for d, or false if d is not a known direction.
// Complexity: O(1).
func (d Direction) Unit() (Point, bool) {
	switch d {
	case Up:
		return Point{X: 0, Y: 1}, true
	case Down:
		return Point{X: 0, Y: -1}, true
	case Right:
		return Point{X: 1, Y: 0}, true
	case Left:
		return Point{X: -1, Y: 0}, true
	}
	return Point{}, false
}

// String returns the direction letter.
func (d Direction) String() string {
	return string(rune(d))
}

// Token is one parsed path instruction, e.g. "R8" → {Right, 8}.
// Steps is always positive for a token produced by ParseToken.
type Token struct {
	Dir   Direction
	Steps int
}

// String renders the token back to its textual form.
func (t Token) String() string {
	return t.Dir.String() + strconv.Itoa(t.Steps)
}

// Point is an integer position on the infinite grid.
type Point struct {
	X, Y int
}

// Origin is the central port every wire starts from.
var Origin = Point{}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by k on both axes.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Manhattan returns |X| + |Y|, the grid distance from the origin.
func (p Point) Manhattan() int {
	return abs(p.X) + abs(p.Y)
}

// Segment is the axis-aligned edge between two consecutive polyline points.
type Segment struct {
	From, To Point
}

// Vertical reports whether the segment runs along the Y axis.
func (s Segment) Vertical() bool {
	return s.From.X == s.To.X && s.From.Y != s.To.Y
}

// Horizontal reports whether the segment runs along the X axis.
func (s Segment) Horizontal() bool {
	return s.From.Y == s.To.Y && s.From.X != s.To.X
}

// Len returns the number of grid steps from From to To.
func (s Segment) Len() int {
	return abs(s.To.X-s.From.X) + abs(s.To.Y-s.From.Y)
}

// Crossing is a point where wire A and wire B cross, together with the
// walked distance along each wire from its start to that point.
type Crossing struct {
	At     Point
	StepsA int
	StepsB int
}

// Distance returns the Manhattan distance of the crossing from the origin.
func (c Crossing) Distance() int {
	return c.At.Manhattan()
}

// Steps returns the combined walked distance of both wires.
func (c Crossing) Steps() int {
	return c.StepsA + c.StepsB
}

// ScanOptions configures Crossings.
//
// Fields:
//   - Workers — number of goroutines sharing the outer segment loop.
//     0 or 1 scans sequentially on the caller's goroutine; negative values
//     are rejected with ErrBadWorkers.
type ScanOptions struct {
	Workers int
}

// DefaultScanOptions returns a sequential scan configuration.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{Workers: 1}
}

// Result holds everything Solve derives for a pair of wires.
type Result struct {
	// Crossings lists every crossing in scan order (segments of A outermost).
	Crossings []Crossing
	// Distance is the Manhattan distance of the nearest crossing.
	Distance int
	// Steps is the smallest combined walked distance over all crossings.
	Steps int
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
