package pairs_test

import (
	"fmt"

	"github.com/katalvlaran/pairsum/pairs"
)

// ExampleEnumerate lists the Pair Set of bound 4 in generation order.
func ExampleEnumerate() {
	ps, err := pairs.Enumerate(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ps)
	// Output:
	// [(1,2) (1,3) (1,4) (2,3) (2,4) (3,4)]
}

// ExampleCount shows the cardinality of the canonical range.
func ExampleCount() {
	n, _ := pairs.Count(pairs.DefaultBound)
	fmt.Println(n)
	// Output:
	// 499500
}
