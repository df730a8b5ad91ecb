package passcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadRange indicates a malformed or inverted range.
var ErrBadRange = errors.New("passcode: range must be lo-hi with 0 <= lo <= hi")

// Rule decides whether a candidate passes.
type Rule func(n int) bool

// Range is an inclusive interval of candidates.
type Range struct {
	Lo, Hi int
}

// ParseRange parses "256310-732736".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	a, err := strconv.Atoi(lo)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadRange, s, err)
	}
	b, err := strconv.Atoi(hi)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadRange, s, err)
	}
	if a < 0 || a > b {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	return Range{Lo: a, Hi: b}, nil
}

// Digits returns the decimal digits of n, most significant first.
// Negative numbers use their absolute value.
func Digits(n int) []int {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return []int{0}
	}
	var ds []int
	for ; n > 0; n /= 10 {
		ds = append(ds, n%10)
	}
	for l, r := 0, len(ds)-1; l < r; l, r = l+1, r-1 {
		ds[l], ds[r] = ds[r], ds[l]
	}
	return ds
}

// NonDecreasing reports whether digits never decrease left to right.
func NonDecreasing(ds []int) bool {
	for i := 1; i < len(ds); i++ {
		if ds[i] < ds[i-1] {
			return false
		}
	}
	return true
}

// HasDouble reports whether two adjacent digits are equal.
func HasDouble(ds []int) bool {
	for i := 1; i < len(ds); i++ {
		if ds[i] == ds[i-1] {
			return true
		}
	}
	return false
}

// HasExactDouble reports whether some run of equal digits is exactly two long.
func HasExactDouble(ds []int) bool {
	run := 1
	for i := 1; i <= len(ds); i++ {
		if i < len(ds) && ds[i] == ds[i-1] {
			run++
			continue
		}
		if run == 2 {
			return true
		}
		run = 1
	}
	return false
}

// Valid is the part-one rule: a double and never decreasing.
func Valid(n int) bool {
	ds := Digits(n)
	return HasDouble(ds) && NonDecreasing(ds)
}

// ValidStrict is the part-two rule: an exact double and never decreasing.
func ValidStrict(n int) bool {
	ds := Digits(n)
	return HasExactDouble(ds) && NonDecreasing(ds)
}

// Matching returns every value in r accepted by rule, in ascending order.
func Matching(r Range, rule Rule) []int {
	var out []int
	for n := r.Lo; n <= r.Hi; n++ {
		if rule(n) {
			out = append(out, n)
		}
	}
	return out
}

// Count returns how many values in r are accepted by rule.
func Count(r Range, rule Rule) int {
	c := 0
	for n := r.Lo; n <= r.Hi; n++ {
		if rule(n) {
			c++
		}
	}
	return c
}
