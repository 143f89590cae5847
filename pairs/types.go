// SPDX-License-Identifier: MIT
// Package: pairsum/pairs
//
// types.go — Pair and the bound limits.

package pairs

import "fmt"

// DefaultBound is the upper bound of the canonical pair range [1, 1000].
const DefaultBound = 1000

// MaxBound caps n so that n·(n−1)/2 and every i·j stay inside int64.
const MaxBound = 1 << 30

// MaxEnumerateBound caps n for Enumerate, which holds the whole set in
// memory: 4096·4095/2 pairs is about 134 MB on 64-bit platforms.
const MaxEnumerateBound = 1 << 12

// Pair is an ordered 2-tuple (I, J) drawn from the enumerated range.
// Members of a Pair Set always satisfy 1 ≤ I < J.
type Pair struct {
	I int
	J int
}

// Ordered reports whether 1 ≤ I < J.
func (p Pair) Ordered() bool {
	return p.I >= 1 && p.I < p.J
}

// Valid reports whether p belongs to the Pair Set of bound n.
func (p Pair) Valid(n int) bool {
	return p.Ordered() && p.J <= n
}

// String renders the pair as "(i,j)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.I, p.J)
}
