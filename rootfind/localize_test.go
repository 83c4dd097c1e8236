// SPDX-License-Identifier: MIT

package rootfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindRoots_ResidualBound: every reported root of f2 on (0.1, 3.9) has a tiny residual.
func TestFindRoots_ResidualBound(t *testing.T) {
	fn := rootfind.LabFunctions()[1]

	roots, err := rootfind.FindRoots(fn.Eval, 0.1, 3.9)
	require.NoError(t, err)
	require.NotEmpty(t, roots)
	for _, r := range roots {
		assert.Less(t, math.Abs(fn.Eval(r)), 1e-9, "root %v", r)
	}
}

// TestFindRoots_OpenMethodsAgree: Newton and secant started near each
// bisection root land within 1e-8 of it.
func TestFindRoots_OpenMethodsAgree(t *testing.T) {
	fns := rootfind.LabFunctions()
	cases := []struct {
		fn   rootfind.Function
		a, b float64
	}{
		{fns[0], -2.9, 0.9},
		{fns[1], 0.1, 3.9},
		{fns[2], -1.9, 3.9},
	}
	for _, tc := range cases {
		t.Run(tc.fn.Name, func(t *testing.T) {
			roots, err := rootfind.FindRoots(tc.fn.Eval, tc.a, tc.b)
			require.NoError(t, err)
			require.NotEmpty(t, roots)

			for _, r := range roots {
				newton, err := rootfind.Newton(tc.fn.Eval, tc.fn.Derivative, r+1e-3)
				require.NoError(t, err)
				require.True(t, newton.Converged, "newton from %v: %s", r+1e-3, newton.Reason)
				assert.InDelta(t, r, newton.Root, 1e-8)

				secant, err := rootfind.Secant(tc.fn.Eval, r-1e-3, r+1e-3)
				require.NoError(t, err)
				require.True(t, secant.Converged, "secant around %v: %s", r, secant.Reason)
				assert.InDelta(t, r, secant.Root, 1e-8)
			}
		})
	}
}

func TestFindRoots_Deterministic(t *testing.T) {
	f := rootfind.LabFunctions()[2].Eval

	first, err := rootfind.FindRoots(f, -1.9, 3.9)
	require.NoError(t, err)
	second, err := rootfind.FindRoots(f, -1.9, 3.9)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindRoots_Cubic(t *testing.T) {
	f := func(x float64) float64 { return (x - 1) * (x - 2) * (x - 3) }

	roots, err := rootfind.FindRoots(f, 0, 4)
	require.NoError(t, err)
	require.Len(t, roots, 3)
	for i, want := range []float64{1, 2, 3} {
		assert.InDelta(t, want, roots[i], 1e-9)
	}
}

// TestFindRoots_GridPointRoot: a root sitting exactly on a grid node has no
// strict sign change and is skipped.
func TestFindRoots_GridPointRoot(t *testing.T) {
	roots, err := rootfind.FindRoots(func(x float64) float64 { return x }, -1, 1, rootfind.WithSamples(3))
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestFindRoots_SkipsPoles(t *testing.T) {
	// Three samples put the middle node on the pole at x=0.
	roots, err := rootfind.FindRoots(rootfind.LabFunctions()[1].Eval, -1, 1, rootfind.WithSamples(3))
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestFindRoots_Errors(t *testing.T) {
	_, err := rootfind.FindRoots(nil, 0, 1)
	assert.ErrorIs(t, err, rootfind.ErrNilFunction)

	_, err = rootfind.FindRoots(sqrt2, 1, 1)
	assert.ErrorIs(t, err, rootfind.ErrBadInterval)

	_, err = rootfind.FindRoots(sqrt2, math.Inf(-1), 1)
	assert.ErrorIs(t, err, rootfind.ErrBadInterval)
}
