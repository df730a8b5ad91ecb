// Package passcode counts candidate passwords that satisfy digit rules.
//
// Rules over the decimal digits of a candidate:
//
//   - NonDecreasing: going left to right, digits never decrease.
//   - HasDouble: at least two adjacent digits are equal.
//   - HasExactDouble: some run of equal digits has length exactly two.
//
// Valid combines HasDouble with NonDecreasing; ValidStrict combines
// HasExactDouble with NonDecreasing. Count applies a Rule to every value in
// an inclusive Range.
//
// Errors:
//
//   - ErrBadRange: a range string that is not "lo-hi" with 0 ≤ lo ≤ hi.
package passcode
