// Package aggregate reduces a Pair Set to a single integer: the sum of
// GCD(i, j) + LCM(i, j) over every pair.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pairsum/aggregate"
//
//	total, err := aggregate.Total(1000)     // 91507376770
//	rep, err := aggregate.Run(1000)         // total + pair count + elapsed time
//	total, err = aggregate.Sum(somePairs)   // explicit Pair Set
//
// The accumulator is int64 and every addition is checked; a result that
// would not fit is reported as numtheory.ErrOverflow instead of wrapping.
// All functions are pure: the same input always yields the same total.
//
// Performance:
//
//   - Time:   O(n² · log n) for bound n
//   - Memory: O(1) for Total and Run, O(len(pairs)) held by the caller for Sum
package aggregate
