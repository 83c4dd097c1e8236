// SPDX-License-Identifier: MIT

package numeric_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/numeric"
)

// ExamplePolynomial_Integral integrates 3x² + 1 exactly over [0, 2].
func ExamplePolynomial_Integral() {
	p := numeric.Polynomial{3, 0, 1}
	fmt.Println(p.Integral(0, 2))
	// Output:
	// 10
}

// ExamplePowerTrend builds an O(h²) reference line anchored at the first sample.
func ExamplePowerTrend() {
	n := []float64{2, 4, 8}
	fmt.Println(numeric.PowerTrend(n, 0.16, -2))
	// Output:
	// [0.16 0.04 0.01]
}

// ExampleLeastSquares fits the best line to x² on [0, 1] in the L2 sense.
func ExampleLeastSquares() {
	sq := func(x float64) float64 { return x * x }
	p, err := numeric.LeastSquares(sq, 0, 1, 1, numeric.WithInnerProduct(numeric.RuleSimpson, 100))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f %.4f\n", p[0], p[1])
	// Output:
	// 1.0000 -0.1667
}
