// SPDX-License-Identifier: MIT
// Package: pairsum/numtheory
//
// gcd.go — Euclid GCD and the combined GCD/LCM pass.

package numtheory

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of x and y.
//
// Algorithm (Euclid, iterative):
//  1. While y ≠ 0: (x, y) ← (y, x mod y).
//  2. Return |x|.
//
// The loop terminates because x mod y < y strictly decreases the second
// operand toward zero. GCD(x, 0) = |x| and GCD(0, 0) = 0.
//
// The result is non-negative except when the divisor is the minimum value
// of a signed T (e.g. GCD(math.MinInt64, 0)): its magnitude has no
// representation in T, so it is returned unchanged. GCDLCM and CheckedLCM
// reject non-positive operands and never see this case.
//
// Complexity: O(log min(x, y)) time, O(1) space.
func GCD[T constraints.Integer](x, y T) T {
	for y != 0 {
		x, y = y, x%y
	}
	if x < 0 {
		x = -x
	}

	return x
}

// GCDLCM returns GCD(a, b) and LCM(a, b) for positive int64 operands,
// running Euclid once and reusing the divisor for the multiple.
//
// Errors:
//   - ErrNonPositive if a ≤ 0 or b ≤ 0.
//   - ErrOverflow if the multiple does not fit in int64.
func GCDLCM(a, b int64) (g, l int64, err error) {
	if a <= 0 || b <= 0 {
		return 0, 0, nonPositive(a, b)
	}
	g = GCD(a, b)
	l, err = mulChecked(a/g, b)
	if err != nil {
		return 0, 0, err
	}

	return g, l, nil
}
