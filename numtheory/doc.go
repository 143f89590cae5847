// Package numtheory provides the two integer primitives the pair aggregator
// is built on: greatest common divisor and least common multiple.
//
// 🚀 What is inside?
//
//	GCD — Euclid's algorithm in its iterative form:
//	  while y ≠ 0: (x, y) ← (y, x mod y); return x
//	LCM — (a × b) / GCD(a, b), evaluated as a / GCD(a, b) × b so the
//	  intermediate never exceeds the result.
//
// ✨ Key features:
//   - generic over every integer kind (constraints.Integer)
//   - GCD(x, 0) = x and GCD(0, 0) = 0, no special-casing by callers
//   - CheckedLCM / AddChecked for int64 pipelines that must never wrap
//   - GCDLCM returns both values from a single Euclid pass
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pairsum/numtheory"
//
//	g := numtheory.GCD(12, 18)               // 6
//	l := numtheory.LCM(4, 6)                 // 12
//	g, l, err := numtheory.GCDLCM(999, 1000) // 1, 999000, nil
//
// Performance:
//
//   - Time:   O(log min(x, y))
//   - Memory: O(1)
package numtheory
