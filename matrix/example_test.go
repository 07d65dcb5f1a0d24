package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ratinterp/matrix"
)

// ExampleSolve reduces a singular 3×4 system to reduced row-echelon form.
func ExampleSolve() {
	m := matrix.FromInts([][]int64{
		{1, 2, 3, 4},
		{4, 5, 6, 7},
		{7, 8, 9, 10},
	})
	rref, err := matrix.Solve(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(rref)
	fmt.Println("triangular:", matrix.IsTriangular(rref))

	// Output:
	// [1, 0, -1, -2]
	// [0, 1, 2, 3]
	// [0, 0, 0, 0]
	// triangular: false
}

// ExampleEliminate shows that forward elimination alone leaves entries above
// the pivots in place.
func ExampleEliminate() {
	m := matrix.FromInts([][]int64{
		{2, 4, 2},
		{1, 3, 2},
	})
	ech, _ := matrix.Eliminate(m)
	fmt.Print(ech)

	// Output:
	// [1, 2, 1]
	// [0, 1, 1]
}
