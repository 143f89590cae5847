// Package pairsum totals GCD(i, j) + LCM(i, j) over every pair of integers
// 1 ≤ i < j ≤ 1000.
//
// 🚀 What is pairsum?
//
//	A small, pure-Go reduction split into three layers:
//		• Number theory: iterative Euclid GCD, exact LCM, checked int64 math
//		• Pair Set: ordered enumeration of (i, j) with i < j, n·(n−1)/2 members
//		• Aggregation: Σ GCD + LCM with an overflow-checked int64 accumulator
//
// ✨ Why this layout?
//
//   - Every layer is a pure function of its input; reruns are identical
//   - No silent wraparound: overflow is an error, not a wrong answer
//   - The pair range is a parameter in the library and fixed in the CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	numtheory/     — GCD, LCM, GCDLCM, CheckedLCM, AddChecked
//	pairs/         — Pair, Count, Enumerate, Each
//	aggregate/     — Contribution, Sum, Total, Run
//	internal/cli/  — the pairsum command (cobra)
//	cmd/pairsum/   — entry point
//
// Quick example, bound n = 3:
//
//	(1,2) → 1 + 2 = 3
//	(1,3) → 1 + 3 = 4
//	(2,3) → 1 + 6 = 7
//	                ──
//	                14
//
//	go install github.com/katalvlaran/pairsum/cmd/pairsum@latest
package pairsum
