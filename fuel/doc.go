// Package fuel computes launch fuel for spacecraft modules.
//
// What:
//
//   - Required: fuel for a bare mass, ⌊mass/3⌋ − 2.
//   - Compound: fuel for a mass plus the fuel needed to lift that fuel,
//     repeated until the next requirement is zero or negative.
//   - Total / CompoundTotal: sums over a list of module masses.
//
// Complexity:
//
//   - Required: O(1).
//   - Compound: O(log₃ mass) iterations, O(1) memory.
//
// Errors:
//
//   - ErrNegativeMass: a module mass below zero.
package fuel
