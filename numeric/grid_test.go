// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspaceGeomspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, numeric.Linspace(0, 1, 5))
	assert.Nil(t, numeric.Linspace(0, 1, 1))

	assert.InDeltaSlice(t, []float64{1, 10, 100}, numeric.Geomspace(1, 100, 3), 1e-12)
	assert.Nil(t, numeric.Geomspace(0, 1, 3))
}

func TestStrideFloor(t *testing.T) {
	vals := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, []float64{0, 5}, numeric.Stride(vals, 5))
	assert.Equal(t, []float64{0, 3, 6, 9}, numeric.Stride(vals, 3))
	assert.Equal(t, vals, numeric.Stride(vals, 1))

	assert.Equal(t, []float64{1e-15, 1e-15, 1}, numeric.Floor([]float64{1e-20, math.NaN(), 1}, 1e-15))
}

func TestLinearInterpolator(t *testing.T) {
	in, err := numeric.LinearInterpolator([]float64{0, 1, 2}, []float64{0, 10, 0})
	require.NoError(t, err)

	assert.InDelta(t, 5, in.Predict(0.5), 1e-12)
	assert.InDelta(t, 5, in.Predict(1.5), 1e-12)
	assert.InDelta(t, -10, in.Predict(-1), 1e-12, "first segment extended")
	assert.InDelta(t, -10, in.Predict(3), 1e-12, "last segment extended")
	assert.Equal(t, 10.0, in.Predict(1))

	_, err = numeric.LinearInterpolator([]float64{0, 0, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, numeric.ErrNotIncreasing)
	_, err = numeric.LinearInterpolator([]float64{0}, []float64{1})
	assert.ErrorIs(t, err, numeric.ErrEmpty)
	_, err = numeric.LinearInterpolator([]float64{0, 1}, []float64{1})
	assert.ErrorIs(t, err, numeric.ErrLengthMismatch)
}

func TestMaskXY(t *testing.T) {
	xs := []float64{1, -1, 2, math.NaN(), 3}
	ys := []float64{1, 1, 0, 1, math.Inf(1)}

	mx, my := numeric.MaskXY(xs, ys, false, false)
	assert.Equal(t, []float64{1, -1, 2}, mx)
	assert.Equal(t, []float64{1, 1, 0}, my)

	mx, my = numeric.MaskXY(xs, ys, true, true)
	assert.Equal(t, []float64{1}, mx)
	assert.Equal(t, []float64{1}, my)

	assert.True(t, numeric.Finite(0))
	assert.False(t, numeric.Finite(math.Inf(-1)))
}
