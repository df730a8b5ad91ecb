package wire

import (
	"fmt"
	"math"
	"strconv"
)

// MaxLength bounds the total walked distance of one wire. Coordinates,
// segment lengths and the combined steps of two wires all stay below
// 2·MaxLength, which fits a 32-bit int.
const MaxLength = math.MaxInt32 / 2

// Polyline is the ordered list of corner points a wire passes through,
// starting at Origin. Consecutive points differ along exactly one axis.
type Polyline []Point

// ParseToken parses a single path instruction such as "U5" or "L120".
// The first byte must be one of U, D, L, R; the rest must be an unsigned
// decimal integer in [1, MaxLength].
// Returns ErrMalformedToken (wrapped with the raw text) otherwise.
// Complexity: O(len(raw)).
func ParseToken(raw string) (Token, error) {
	if len(raw) < 2 {
		return Token{}, fmt.Errorf("%w: %q", ErrMalformedToken, raw)
	}
	dir := Direction(raw[0])
	if _, ok := dir.Unit(); !ok {
		return Token{}, fmt.Errorf("%w: %q: unknown direction %q", ErrMalformedToken, raw, raw[0])
	}
	// ParseUint rejects signs, so "R-3" and "R+3" both fail here.
	n, err := strconv.ParseUint(raw[1:], 10, 32)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %q: %v", ErrMalformedToken, raw, err)
	}
	if n == 0 {
		return Token{}, fmt.Errorf("%w: %q: zero-length step", ErrMalformedToken, raw)
	}
	if n > MaxLength {
		return Token{}, fmt.Errorf("%w: %q: more than %d steps", ErrMalformedToken, raw, MaxLength)
	}
	return Token{Dir: dir, Steps: int(n)}, nil
}

// ParseTokens parses every raw token in order and stops at the first failure.
// The returned error names the offending token index.
func ParseTokens(raw []string) ([]Token, error) {
	tokens := make([]Token, 0, len(raw))
	for i, r := range raw {
		t, err := ParseToken(r)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// Trace walks the tokens from Origin and returns the visited corners.
// The result always starts with Origin, so an empty token list yields a
// single-point polyline.
// Returns ErrMalformedToken, naming the token index, for an unknown
// direction, a non-positive step count, or a wire whose total length
// exceeds MaxLength.
// Complexity: O(len(tokens)).
func Trace(tokens []Token) (Polyline, error) {
	pl := make(Polyline, 1, len(tokens)+1)
	pl[0] = Origin
	cur := Origin
	walked := 0
	for i, t := range tokens {
		unit, ok := t.Dir.Unit()
		if !ok {
			return nil, fmt.Errorf("token %d: %w: unknown direction %q", i, ErrMalformedToken, byte(t.Dir))
		}
		if t.Steps <= 0 {
			return nil, fmt.Errorf("token %d: %w: non-positive step count %d", i, ErrMalformedToken, t.Steps)
		}
		// Checked before adding so the sum itself cannot wrap.
		if t.Steps > MaxLength-walked {
			return nil, fmt.Errorf("token %d: %w: wire longer than %d steps", i, ErrMalformedToken, MaxLength)
		}
		walked += t.Steps
		cur = cur.Add(unit.Scale(t.Steps))
		pl = append(pl, cur)
	}
	return pl, nil
}

// TraceRaw parses raw tokens and traces them in one step.
func TraceRaw(raw []string) (Polyline, error) {
	tokens, err := ParseTokens(raw)
	if err != nil {
		return nil, err
	}
	return Trace(tokens)
}

// Segments returns the len(pl)-1 edges of the polyline in walking order.
func (pl Polyline) Segments() []Segment {
	if len(pl) < 2 {
		return nil
	}
	segs := make([]Segment, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		segs[i-1] = Segment{From: pl[i-1], To: pl[i]}
	}
	return segs
}

// Length returns the total walked distance of the wire.
func (pl Polyline) Length() int {
	total := 0
	for i := 1; i < len(pl); i++ {
		total += Segment{From: pl[i-1], To: pl[i]}.Len()
	}
	return total
}

// Tokens rebuilds the instructions that produced pl from its consecutive
// deltas. It fails with ErrMalformedToken when a pair of points is not a
// non-empty axis-aligned step.
func (pl Polyline) Tokens() ([]Token, error) {
	if len(pl) < 2 {
		return []Token{}, nil
	}
	tokens := make([]Token, 0, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		dx, dy := pl[i].X-pl[i-1].X, pl[i].Y-pl[i-1].Y
		var t Token
		switch {
		case dx == 0 && dy > 0:
			t = Token{Dir: Up, Steps: dy}
		case dx == 0 && dy < 0:
			t = Token{Dir: Down, Steps: -dy}
		case dy == 0 && dx > 0:
			t = Token{Dir: Right, Steps: dx}
		case dy == 0 && dx < 0:
			t = Token{Dir: Left, Steps: -dx}
		default:
			return nil, fmt.Errorf("%w: step %d from %v to %v", ErrMalformedToken, i-1, pl[i-1], pl[i])
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}
