// SPDX-License-Identifier: MIT
// Package: pairsum/aggregate
//
// options.go — functional options for Run.
//
// Contract:
//   • Option constructors panic on nil; Run itself never panics.
//   • Options apply in order, later overrides earlier.

package aggregate

import "time"

// Option customises Run.
type Option func(*config)

type config struct {
	now func() time.Time
}

func newConfig(opts ...Option) config {
	cfg := config{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithClock replaces time.Now for the elapsed-time measurement in Run.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("aggregate: WithClock(nil)")
	}

	return func(c *config) {
		c.now = now
	}
}
