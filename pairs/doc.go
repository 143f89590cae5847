// Package pairs enumerates the Pair Set: every ordered pair (i, j) of
// integers with 1 ≤ i < j ≤ n.
//
// Generation order is fixed so results are reproducible: i ascending in the
// outer loop, j ascending (j > i) in the inner loop. For n = 4:
//
//	(1,2) (1,3) (1,4)
//	      (2,3) (2,4)
//	            (3,4)
//
// The set has exactly n·(n−1)/2 members. Enumerate materialises it as a
// slice; Each walks it without allocating.
package pairs
