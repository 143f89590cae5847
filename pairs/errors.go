// SPDX-License-Identifier: MIT
// Package: pairsum/pairs
//
// errors.go — sentinel errors for the pairs package.

package pairs

import "errors"

var (
	// ErrBadBound indicates n < 1 or n > MaxBound.
	ErrBadBound = errors.New("pairs: bound out of range")

	// ErrTooLarge indicates the Pair Set is too big to materialise; walk it
	// with Each instead.
	ErrTooLarge = errors.New("pairs: pair set too large to enumerate")

	// ErrNilVisitor indicates Each was called with a nil callback.
	ErrNilVisitor = errors.New("pairs: visitor is nil")
)
