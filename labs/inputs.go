// SPDX-License-Identifier: MIT

package labs

import (
	"fmt"

	"github.com/katalvlaran/numlab/dataio"
)

// loadColumns reads the 0-based columns idx of a table file.
func loadColumns(path string, idx []int, opts ...dataio.Option) ([][]float64, error) {
	t, err := dataio.LoadTable(path, opts...)
	if err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoData)
	}
	out := make([][]float64, len(idx))
	for k, i := range idx {
		if out[k], err = t.FloatsAt(i); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return out, nil
}

// loadXY reads the first two columns of a headerless numeric file.
func loadXY(path string) (xs, ys []float64, err error) {
	cols, err := loadColumns(path, []int{0, 1}, dataio.WithHeader(false))
	if err != nil {
		return nil, nil, err
	}

	return cols[0], cols[1], nil
}
