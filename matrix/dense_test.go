// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps a Dense so type switches on *matrix.Dense miss and the
// generic At/Set paths run.
type hide struct{ *matrix.Dense }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestNewDense(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}

	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrBadShape, "%dx%d", tc.r, tc.c)
	}
}

func TestDense_AtSet(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange)
		assert.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
}

func TestFromRows_Errors(t *testing.T) {
	for name, rows := range map[string][][]float64{
		"nil":       nil,
		"empty row": {{}},
		"ragged":    {{1, 2}, {3}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.FromRows(rows)
			assert.ErrorIs(t, err, matrix.ErrBadShape)
		})
	}
}

func TestDense_CloneString(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4.5}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	assert.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
	assert.Equal(t, "[9, 2]\n[3, 4.5]\n", c.String())
}

func TestMatVec(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	y, err = matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(m, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, x)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilDense *matrix.Dense
	_, err = matrix.MatVec(nilDense, x)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
