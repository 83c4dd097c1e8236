// SPDX-License-Identifier: MIT

package numeric

import "math"

// Integrand is a named function with its lab integration interval.
// Breaks optionally split [A, B] into segments integrated separately.
type Integrand struct {
	Name   string
	Slug   string
	F      func(float64) float64
	A, B   float64
	Breaks []float64
}

// Exact integrates the integrand over its interval, honouring Breaks.
func (in Integrand) Exact(opts ...Option) (float64, error) {
	pts := []float64{in.A}
	for _, x := range in.Breaks {
		if x > in.A && x < in.B {
			pts = append(pts, x)
		}
	}
	pts = append(pts, in.B)

	return IntegrateSegments(in.F, pts, opts...)
}

// XCos3 is x·cos³(x) on [3.5, 6.52968912439344].
func XCos3() Integrand {
	return Integrand{
		Name: "x*cos^3(x)",
		Slug: "xcos3x",
		F: func(x float64) float64 {
			c := math.Cos(x)
			return x * c * c * c
		},
		A: 3.5,
		B: 6.52968912439344,
	}
}

// X2Sin3 is x²·sin³(x) on [1, 4.764798248].
func X2Sin3() Integrand {
	return Integrand{
		Name: "x^2*sin^3(x)",
		Slug: "x_sin3x",
		F: func(x float64) float64 {
			s := math.Sin(x)
			return x * x * s * s * s
		},
		A: 1,
		B: 4.764798248,
	}
}

// ExpX2 is exp(x²)·(1−x) on [−2, 3.2087091329], split at 0, 2 and 3 where
// the integrand starts growing steeply.
func ExpX2() Integrand {
	return Integrand{
		Name: "exp(x^2)*(1-x)",
		Slug: "exp_x2",
		F: func(x float64) float64 {
			return math.Exp(x*x) * (1 - x)
		},
		A:      -2,
		B:      3.2087091329,
		Breaks: []float64{0, 2, 3},
	}
}
