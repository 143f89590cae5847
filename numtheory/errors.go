// SPDX-License-Identifier: MIT
// Package: pairsum/numtheory
//
// errors.go — sentinel errors for the numtheory package.
// Callers match with errors.Is; call sites attach operands with %w.

package numtheory

import "errors"

var (
	// ErrNonPositive is returned by the checked operations when an operand
	// is zero or negative.
	ErrNonPositive = errors.New("numtheory: operand must be positive")

	// ErrOverflow is returned when a result does not fit in int64.
	ErrOverflow = errors.New("numtheory: int64 overflow")
)
