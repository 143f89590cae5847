// SPDX-License-Identifier: MIT
// Package: pairsum/aggregate
//
// errors.go — sentinel errors for the aggregate package.

package aggregate

import "errors"

// ErrUnorderedPair indicates Sum received a pair violating 1 ≤ I < J.
var ErrUnorderedPair = errors.New("aggregate: pair is not ordered")
