// SPDX-License-Identifier: MIT

package rootfind_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/numlab/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_AllMethods(t *testing.T) {
	fn := rootfind.LabFunctions()[1]
	roots, err := rootfind.FindRoots(fn.Eval, 1.5, 2.0)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	r := roots[0]

	cmp, err := rootfind.Compare(fn, r)
	require.NoError(t, err)

	assert.Equal(t, "Function 2", cmp.Function)
	assert.Equal(t, [2]float64{r - 0.5, r + 0.5}, cmp.Bracket)
	require.Len(t, cmp.Results, 3)
	assert.Equal(t, rootfind.MethodBisection, cmp.Results[0].Method)
	assert.Equal(t, rootfind.MethodNewton, cmp.Results[1].Method)
	assert.Equal(t, rootfind.MethodSecant, cmp.Results[2].Method)

	for _, res := range cmp.Results {
		assert.True(t, res.Converged, "%s: %s", res.Method, res.Reason)
		assert.InDelta(t, r, res.Root, 1e-8, string(res.Method))
	}

	newton, ok := cmp.Result(rootfind.MethodNewton)
	require.True(t, ok)
	assert.Equal(t, r+rootfind.DefaultStartOffset, newton.Approximations[0])

	secant, ok := cmp.Result(rootfind.MethodSecant)
	require.True(t, ok)
	assert.Equal(t, []float64{r - 0.1, r + 0.1}, secant.Approximations[:2])
}

// TestCompare_NoBracket omits bisection when widening never finds a sign change.
func TestCompare_NoBracket(t *testing.T) {
	fn := rootfind.Function{
		Name: "positive",
		F:    func(x float64) float64 { return x*x + 1 },
		DF:   func(x float64) float64 { return 2 * x },
	}

	cmp, err := rootfind.Compare(fn, 0, rootfind.WithMaxIterations(50))
	require.NoError(t, err)

	assert.Greater(t, cmp.Bracket[1]-cmp.Bracket[0], rootfind.DefaultBracketWidthCap)
	_, ok := cmp.Result(rootfind.MethodBisection)
	assert.False(t, ok)
	require.Len(t, cmp.Results, 2)

	secant, _ := cmp.Result(rootfind.MethodSecant)
	assert.Equal(t, rootfind.ReasonFlatSecant, secant.Reason, "symmetric start on an even function")
}

// TestCompare_LargeEstimate widens by less than one ulp of the estimate;
// the bracket search must still stop at the width cap.
func TestCompare_LargeEstimate(t *testing.T) {
	fn := rootfind.Function{Name: "constant", F: func(float64) float64 { return 1 }}
	const r = 1e16

	type outcome struct {
		cmp rootfind.Comparison
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		cmp, err := rootfind.Compare(fn, r, rootfind.WithMaxIterations(20))
		done <- outcome{cmp, err}
	}()

	select {
	case got := <-done:
		require.NoError(t, got.err)
		assert.LessOrEqual(t, got.cmp.Bracket[0], r)
		assert.GreaterOrEqual(t, got.cmp.Bracket[1], r)
		_, ok := got.cmp.Result(rootfind.MethodBisection)
		assert.False(t, ok)
		require.Len(t, got.cmp.Results, 2)
		for _, res := range got.cmp.Results {
			assert.False(t, res.Converged, string(res.Method))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Compare did not return for a large estimate")
	}
}

func TestCompare_Errors(t *testing.T) {
	_, err := rootfind.Compare(rootfind.Function{Name: "nil"}, 0)
	assert.ErrorIs(t, err, rootfind.ErrNilFunction)
}
