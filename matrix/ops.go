// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// MatVec computes y = m·x for a column vector x with len(x) == m.Cols().
//
// *Dense takes one flat pass per row; other implementations are read
// through At. Loop order is fixed (i→j).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if isNil(m) {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	if len(x) != cols {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), cols, ErrDimensionMismatch))
	}
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			row := d.data[i*d.c : (i+1)*d.c]
			var acc float64
			for j, v := range row {
				acc += v * x[j]
			}
			y[i] = acc
		}
		return y, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}
