// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

func ExampleSolve() {
	a, _ := matrix.FromRows([][]float64{
		{2, 1},
		{1, 3},
	})
	x, err := matrix.Solve(a, []float64{3, 5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f %.3f\n", x[0], x[1])
	// Output: 0.800 1.400
}
