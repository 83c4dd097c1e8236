// SPDX-License-Identifier: MIT

package rootfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqrt2(x float64) float64 { return x*x - 2 }

// TestBisection_Converges checks |f(r)| against the tolerance on a simple bracket.
func TestBisection_Converges(t *testing.T) {
	res, err := rootfind.Bisection(sqrt2, 0, 2)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, rootfind.ReasonConverged, res.Reason)
	assert.Equal(t, rootfind.MethodBisection, res.Method)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-9)
	assert.Equal(t, res.Root, res.Approximations[len(res.Approximations)-1], "root is the last midpoint")
	assert.Equal(t, 1.0, res.Approximations[0], "first midpoint of [0,2]")
}

// TestBisection_NoSignChange verifies the "no result" path.
func TestBisection_NoSignChange(t *testing.T) {
	cases := []struct {
		name string
		f    rootfind.Func
		a, b float64
	}{
		{"same sign", func(x float64) float64 { return x*x + 1 }, -1, 1},
		{"pole at endpoint", rootfind.LabFunctions()[1].Eval, 0, 1},
		{"nan endpoint", func(x float64) float64 { return math.Log(x) }, -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := rootfind.Bisection(tc.f, tc.a, tc.b)
			assert.ErrorIs(t, err, rootfind.ErrNoSignChange)
			assert.Empty(t, res.Approximations)
		})
	}
}

// TestBisection_ZeroEndpoint returns the endpoint immediately.
func TestBisection_ZeroEndpoint(t *testing.T) {
	res, err := rootfind.Bisection(func(x float64) float64 { return x }, 0, 1)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 0.0, res.Root)
	assert.Equal(t, []float64{0}, res.Approximations)
}

// TestBisection_IterationCap keeps the last midpoint as a partial result.
func TestBisection_IterationCap(t *testing.T) {
	res, err := rootfind.Bisection(sqrt2, 0, 2, rootfind.WithMaxIterations(3))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, rootfind.ReasonIterationCap, res.Reason)
	assert.Equal(t, []float64{1, 1.5, 1.25}, res.Approximations)
	assert.Equal(t, 1.25, res.Root)
}

// TestBisection_PoleInside stops on a non-finite midpoint value.
func TestBisection_PoleInside(t *testing.T) {
	res, err := rootfind.Bisection(func(x float64) float64 { return 1 / x }, -1, 1)
	require.NoError(t, err)
	assert.Equal(t, rootfind.ReasonNonFinite, res.Reason)
	assert.Equal(t, []float64{0}, res.Approximations)
}

func TestBisection_NilFunction(t *testing.T) {
	_, err := rootfind.Bisection(nil, 0, 1)
	assert.ErrorIs(t, err, rootfind.ErrNilFunction)
}
