// SPDX-License-Identifier: MIT

package arrowhead_test

import (
	"fmt"

	"github.com/ndrosen/arrowlu/arrowhead"
	"github.com/ndrosen/arrowlu/matrix"
)

// ExampleSolve solves a 5×5 banded arrowhead system with bandwidth 1: a
// diagonal banded block plus one dense trailing row and column. The system
// is built so that the exact solution is the all-ones vector.
func ExampleSolve() {
	a, err := matrix.NewDenseFromRows([][]float64{
		{2, 0, 0, 0, 1},
		{0, 2, 0, 0, 1},
		{0, 0, 2, 0, 1},
		{0, 0, 0, 2, 1},
		{1, 1, 1, 1, 6},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	b := []float64{3, 3, 3, 3, 10}

	// Solve consumes a: afterwards it holds the L and U factors.
	x, err := arrowhead.Solve(a, 1, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(x)
	// Output:
	// [1 1 1 1 1]
}

// ExampleNewPattern inspects the index geometry of a sparsity descriptor.
func ExampleNewPattern() {
	p, err := arrowhead.NewPattern(9, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p)
	fmt.Println("arrow rows start at:", p.ArrowStart())
	fmt.Println("dense tail starts at step:", p.TailStart())
	// Output:
	// S(m=9,k=2)
	// arrow rows start at: 7
	// dense tail starts at step: 5
}
