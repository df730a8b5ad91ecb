package fuel

import (
	"errors"
	"fmt"
)

// ErrNegativeMass indicates a module mass below zero.
var ErrNegativeMass = errors.New("fuel: mass must be non-negative")

// Required returns the fuel for a bare mass: mass/3 rounded down, minus 2.
// Small masses yield zero or negative values; callers that sum them decide
// whether to keep them.
func Required(mass int) int {
	return floorDiv(mass, 3) - 2
}

// Compound returns the fuel for mass including the fuel for that fuel.
// Each step feeds the previous requirement back in as mass and stops once a
// requirement is zero or negative; that last value is not added.
// Masses that need no fuel yield 0.
func Compound(mass int) int {
	total := 0
	for f := Required(mass); f > 0; f = Required(f) {
		total += f
	}
	return total
}

// Total sums Required over all module masses.
func Total(masses []int) (int, error) {
	return sum(masses, Required)
}

// CompoundTotal sums Compound over all module masses.
func CompoundTotal(masses []int) (int, error) {
	return sum(masses, Compound)
}

func sum(masses []int, f func(int) int) (int, error) {
	total := 0
	for i, m := range masses {
		if m < 0 {
			return 0, fmt.Errorf("module %d (mass %d): %w", i, m, ErrNegativeMass)
		}
		total += f(m)
	}
	return total, nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
