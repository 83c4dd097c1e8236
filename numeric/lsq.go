// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// LeastSquares returns the polynomial of the given degree minimising
// ∫_a^b (f(x) − p(x))² dx.
//
// Implementation:
//   - Stage 1: build the Gram matrix of the monomials 1, x, ..., x^degree,
//     G(i,j) = (b^(i+j+1) − a^(i+j+1)) / (i+j+1), which is exact.
//   - Stage 2: evaluate r_i = ∫ x^i·f(x) dx with the inner-product rule
//     (WithInnerProduct; trapezoid over 1000 panels by default).
//   - Stage 3: solve G·c = r with matrix.Solve (LU, partial pivoting) and
//     reverse c into highest-power-first order.
//
// Errors: ErrBadDegree, ErrBadInterval (non-finite bounds or a >= b),
// matrix.ErrSingular when G is numerically singular, ErrNonFinite when an
// inner product is not finite.
//
// The monomial Gram matrix is a scaled Hilbert matrix; beyond degree ~10
// its conditioning limits the accuracy of the coefficients.
func LeastSquares(f func(float64) float64, a, b float64, degree int, opts ...Option) (Polynomial, error) {
	const op = "LeastSquares"
	if degree < 0 {
		return nil, numErrorf(op, fmt.Errorf("%d: %w", degree, ErrBadDegree))
	}
	if !Finite(a) || !Finite(b) || a >= b {
		return nil, numErrorf(op, fmt.Errorf("[%g, %g]: %w", a, b, ErrBadInterval))
	}
	o := gatherOptions(opts...)
	n := degree + 1

	g, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, numErrorf(op, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k := float64(i + j + 1)
			if err := g.Set(i, j, (math.Pow(b, k)-math.Pow(a, k))/k); err != nil {
				return nil, numErrorf(op, err)
			}
		}
	}

	rhs := make([]float64, n)
	for i := range rhs {
		p := float64(i)
		v, err := Composite(o.innerRule, func(x float64) float64 { return math.Pow(x, p) * f(x) }, a, b, o.innerPanels)
		if err != nil {
			return nil, numErrorf(op, err)
		}
		if !Finite(v) {
			return nil, numErrorf(op, fmt.Errorf("x^%d inner product: %w", i, ErrNonFinite))
		}
		rhs[i] = v
	}

	c, err := matrix.Solve(g, rhs)
	if err != nil {
		return nil, numErrorf(op, err)
	}
	out := make(Polynomial, n)
	for i, v := range c {
		out[n-1-i] = v
	}

	return out, nil
}

// SampleRMSE returns the root-mean-square of f − g over n evenly spaced
// points of [a, b], endpoints included. n < 2 yields ErrEmpty.
func SampleRMSE(f, g func(float64) float64, a, b float64, n int) (float64, error) {
	xs := Linspace(a, b, n)
	fs, gs := make([]float64, len(xs)), make([]float64, len(xs))
	for i, x := range xs {
		fs[i], gs[i] = f(x), g(x)
	}
	v, err := RMSE(fs, gs)
	if err != nil {
		return 0, numErrorf("SampleRMSE", err)
	}

	return v, nil
}
