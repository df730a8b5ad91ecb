package wire

// Cross reports whether segments a and b cross at a single interior point
// and returns that point.
//
// Both segments are axis-aligned, so a crossing exists only between a
// vertical and a horizontal segment, and it sits at (vertical.X, horizontal.Y).
// Containment is strict on both axes: a segment whose end merely touches the
// other one does not cross it. Parallel and collinear segments never cross.
//
// The test is symmetric: Cross(a, b) and Cross(b, a) always agree.
// Complexity: O(1).
func Cross(a, b Segment) (Point, bool) {
	if p, ok := crossVertical(a, b); ok {
		return p, true
	}
	return crossVertical(b, a)
}

// crossVertical tests v in the vertical role against h in the horizontal one.
func crossVertical(v, h Segment) (Point, bool) {
	if !v.Vertical() || !h.Horizontal() {
		return Point{}, false
	}
	x, y := v.From.X, h.From.Y
	if !strictlyBetween(x, h.From.X, h.To.X) || !strictlyBetween(y, v.From.Y, v.To.Y) {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// strictlyBetween reports whether v lies in the open interval spanned by a
// and b, in either order.
func strictlyBetween(v, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return a < v && v < b
}
