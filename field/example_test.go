package field_test

import (
	"fmt"

	"github.com/proc36/pairfield/field"
)

// ExampleBoard_Apply rotates a 2x2 board whose pairs stand in columns so
// that they stand in rows; the board is a goal before and after the move.
func ExampleBoard_Apply() {
	b, _ := field.New(2, []int{0, 1, 0, 1})

	_ = b.Apply(field.Operation{X: 0, Y: 0, K: 2})

	fmt.Println(b.Render())
	fmt.Println(b.IsGoal())
	// Output:
	// 0 0
	// 1 1
	// true
}
