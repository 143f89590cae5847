// SPDX-License-Identifier: MIT
// Package: pairsum/numtheory
//
// lcm.go — LCM and the checked int64 arithmetic behind it.

package numtheory

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// LCM returns the least common multiple of a and b, defined as
// (a × b) / GCD(a, b). The division is exact, so it is evaluated as
// a / GCD(a, b) × b to keep the intermediate no larger than the result.
// LCM(x, 0) = 0. The result is non-negative for signed inputs.
//
// LCM does not detect overflow of T; use CheckedLCM for int64 work that
// must not wrap.
//
// Complexity: O(log min(a, b)) time, O(1) space.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}

	return l
}

// CheckedLCM is LCM restricted to positive int64 operands with overflow
// detection.
//
// Errors:
//   - ErrNonPositive if a ≤ 0 or b ≤ 0.
//   - ErrOverflow if the result exceeds math.MaxInt64.
func CheckedLCM(a, b int64) (int64, error) {
	_, l, err := GCDLCM(a, b)

	return l, err
}

// AddChecked returns a + b, or ErrOverflow if the sum leaves the int64 range.
func AddChecked(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}

	return a + b, nil
}

// mulChecked multiplies two positive int64 values through a 128-bit product.
func mulChecked(a, b int64) (int64, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}

	return int64(lo), nil
}

func nonPositive(a, b int64) error {
	return fmt.Errorf("(%d, %d): %w", a, b, ErrNonPositive)
}
