// SPDX-License-Identifier: MIT
// Package: pairsum/pairs
//
// pairs.go — counting, materialising and walking the Pair Set.

package pairs

import "fmt"

// Count returns the cardinality n·(n−1)/2 of the Pair Set of bound n.
//
// Errors:
//   - ErrBadBound if n < 1 or n > MaxBound.
func Count(n int) (int64, error) {
	if err := validateBound(n); err != nil {
		return 0, err
	}
	m := int64(n)

	return m * (m - 1) / 2, nil
}

// Enumerate returns the full Pair Set for bound n in generation order.
// n = 1 yields an empty, non-nil slice.
//
// Errors:
//   - ErrBadBound if n < 1 or n > MaxBound.
//   - ErrTooLarge if n > MaxEnumerateBound; use Each for larger bounds.
//
// Complexity: O(n²) time and memory.
func Enumerate(n int) ([]Pair, error) {
	size, err := Count(n)
	if err != nil {
		return nil, err
	}
	if n > MaxEnumerateBound {
		return nil, fmt.Errorf("n=%d exceeds %d: %w", n, MaxEnumerateBound, ErrTooLarge)
	}
	out := make([]Pair, 0, size)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			out = append(out, Pair{I: i, J: j})
		}
	}

	return out, nil
}

// Each calls visit for every pair of bound n in generation order and stops
// as soon as visit returns false.
//
// Complexity: O(n²) time, O(1) memory.
func Each(n int, visit func(Pair) bool) error {
	if visit == nil {
		return ErrNilVisitor
	}
	if err := validateBound(n); err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if !visit(Pair{I: i, J: j}) {
				return nil
			}
		}
	}

	return nil
}

func validateBound(n int) error {
	if n < 1 || n > MaxBound {
		return fmt.Errorf("n=%d: %w", n, ErrBadBound)
	}

	return nil
}
