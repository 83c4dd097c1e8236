// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Linspace returns n evenly spaced values from a to b inclusive.
// n < 2 yields nil.
func Linspace(a, b float64, n int) []float64 {
	if n < 2 {
		return nil
	}

	return floats.Span(make([]float64, n), a, b)
}

// Geomspace returns n logarithmically spaced values from a to b inclusive.
// Both bounds must be positive; otherwise (or for n < 2) nil is returned.
func Geomspace(a, b float64, n int) []float64 {
	if n < 2 || a <= 0 || b <= 0 {
		return nil
	}

	return floats.LogSpan(make([]float64, n), a, b)
}

// Stride returns every k-th element of vals starting at index 0.
func Stride(vals []float64, k int) []float64 {
	if k <= 1 {
		return append([]float64(nil), vals...)
	}
	out := make([]float64, 0, (len(vals)+k-1)/k)
	for i := 0; i < len(vals); i += k {
		out = append(out, vals[i])
	}

	return out
}

// Floor replaces every value below lo (and NaN) with lo.
func Floor(vals []float64, lo float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) || v < lo {
			v = lo
		}
		out[i] = v
	}

	return out
}

// Interpolator evaluates a fitted 1-D interpolant.
type Interpolator interface {
	Predict(x float64) float64
}

// LinearInterpolator fits a piecewise-linear interpolant through (xs, ys).
// xs must be strictly increasing. Outside [xs[0], xs[n-1]] the first and last
// segments are extended.
func LinearInterpolator(xs, ys []float64) (Interpolator, error) {
	if len(xs) != len(ys) {
		return nil, numErrorf("LinearInterpolator", ErrLengthMismatch)
	}
	if len(xs) < 2 {
		return nil, numErrorf("LinearInterpolator", ErrEmpty)
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, numErrorf("LinearInterpolator", ErrNotIncreasing)
		}
	}
	pl := &interp.PiecewiseLinear{}
	if err := pl.Fit(xs, ys); err != nil {
		return nil, numErrorf("LinearInterpolator", err)
	}
	n := len(xs)

	return &linearExtrapolator{
		pl: pl,
		x0: xs[0],
		y0: ys[0],
		s0: (ys[1] - ys[0]) / (xs[1] - xs[0]),
		xn: xs[n-1],
		yn: ys[n-1],
		sn: (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2]),
	}, nil
}

// linearExtrapolator is a fitted PiecewiseLinear plus its end slopes.
type linearExtrapolator struct {
	pl     *interp.PiecewiseLinear
	x0, y0 float64
	s0     float64
	xn, yn float64
	sn     float64
}

func (e *linearExtrapolator) Predict(x float64) float64 {
	switch {
	case x < e.x0:
		return e.y0 + e.s0*(x-e.x0)
	case x > e.xn:
		return e.yn + e.sn*(x-e.xn)
	}

	return e.pl.Predict(x)
}
