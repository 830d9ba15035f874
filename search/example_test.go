package search_test

import (
	"fmt"

	"github.com/proc36/pairfield/field"
	"github.com/proc36/pairfield/search"
)

// ExampleSolver_Solve runs the solver on a 2x2 board whose pairs already
// stand in columns and reports the resulting pair status.
func ExampleSolver_Solve() {
	b, _ := field.New(2, []int{0, 1, 0, 1})

	solver := search.New(search.DefaultConfig()).WithSeed(1)
	result, _ := solver.Solve(b)

	fmt.Println(result.Solved)
	fmt.Println(result.Status.Unmatched)
	// Output:
	// true
	// 0
}
