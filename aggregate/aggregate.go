// SPDX-License-Identifier: MIT
// Package: pairsum/aggregate
//
// aggregate.go — Σ GCD + LCM over a Pair Set.

package aggregate

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pairsum/numtheory"
	"github.com/katalvlaran/pairsum/pairs"
)

// Report is the outcome of Run.
type Report struct {
	Bound   int           // upper bound n of the pair range
	Pairs   int64         // cardinality of the Pair Set, n·(n−1)/2
	Total   int64         // Σ GCD(i,j) + LCM(i,j)
	Elapsed time.Duration // wall time spent in Total; not part of the result
}

// Contribution returns GCD(p.I, p.J) + LCM(p.I, p.J).
//
// Errors:
//   - ErrUnorderedPair if p does not satisfy 1 ≤ I < J.
//   - numtheory.ErrOverflow if the value does not fit in int64.
func Contribution(p pairs.Pair) (int64, error) {
	if !p.Ordered() {
		return 0, fmt.Errorf("%v: %w", p, ErrUnorderedPair)
	}
	g, l, err := numtheory.GCDLCM(int64(p.I), int64(p.J))
	if err != nil {
		return 0, fmt.Errorf("aggregate: pair %v: %w", p, err)
	}

	return numtheory.AddChecked(l, g)
}

// Sum totals Contribution over ps. An empty set sums to 0.
func Sum(ps []pairs.Pair) (int64, error) {
	var acc int64
	for _, p := range ps {
		c, err := Contribution(p)
		if err != nil {
			return 0, err
		}
		if acc, err = numtheory.AddChecked(acc, c); err != nil {
			return 0, fmt.Errorf("aggregate: accumulating %v: %w", p, err)
		}
	}

	return acc, nil
}

// Total is Sum over the Pair Set of bound n, walked in generation order
// without materialising it.
//
// Errors:
//   - pairs.ErrBadBound if n is out of range.
//   - numtheory.ErrOverflow if the total does not fit in int64.
func Total(n int) (int64, error) {
	var (
		acc  int64
		fail error
	)
	err := pairs.Each(n, func(p pairs.Pair) bool {
		c, err := Contribution(p)
		if err == nil {
			acc, err = numtheory.AddChecked(acc, c)
		}
		if err != nil {
			fail = fmt.Errorf("aggregate: accumulating %v: %w", p, err)

			return false
		}

		return true
	})
	if err != nil {
		return 0, err
	}
	if fail != nil {
		return 0, fail
	}

	return acc, nil
}

// Run computes Total(n) and records the pair count and elapsed time.
func Run(n int, opts ...Option) (Report, error) {
	cfg := newConfig(opts...)
	count, err := pairs.Count(n)
	if err != nil {
		return Report{}, err
	}

	start := cfg.now()
	total, err := Total(n)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Bound:   n,
		Pairs:   count,
		Total:   total,
		Elapsed: cfg.now().Sub(start),
	}, nil
}
