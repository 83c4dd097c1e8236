// SPDX-License-Identifier: MIT

package numeric

import "math"

// Finite reports whether v is neither NaN nor ±Inf.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MaskXY returns the pairs (x_i, y_i) that are finite; with positiveX or
// positiveY set, pairs with a non-positive coordinate on that axis are
// dropped as well. Extra elements of the longer slice are ignored.
func MaskXY(xs, ys []float64, positiveX, positiveY bool) ([]float64, []float64) {
	n := min(len(xs), len(ys))
	outX := make([]float64, 0, n)
	outY := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		if !Finite(x) || !Finite(y) {
			continue
		}
		if (positiveX && x <= 0) || (positiveY && y <= 0) {
			continue
		}
		outX = append(outX, x)
		outY = append(outY, y)
	}

	return outX, outY
}
