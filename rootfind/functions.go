// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"
	"strings"
)

// Function is a named test function with optional analytic derivative and
// exclusion points. Evaluating at an exclusion point (or at a non-finite x)
// yields +Inf, the undefined marker.
type Function struct {
	Name    string
	Formula string
	F       Func
	DF      Func
	Poles   []float64
}

// Eval evaluates F with pole masking.
func (fn Function) Eval(x float64) float64 {
	if fn.undefined(x) {
		return math.Inf(1)
	}

	return fn.F(x)
}

// Derivative evaluates DF with pole masking; a nil DF falls back to a central
// finite difference of Eval.
func (fn Function) Derivative(x float64) float64 {
	if fn.undefined(x) {
		return math.Inf(1)
	}
	if fn.DF == nil {
		return CentralDerivative(fn.Eval)(x)
	}

	return fn.DF(x)
}

// Slug returns a file-name friendly form of Name ("Function 1" → "function_1").
func (fn Function) Slug() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(fn.Name)), " ", "_")
}

func (fn Function) undefined(x float64) bool {
	if !isFinite(x) {
		return true
	}
	for _, p := range fn.Poles {
		if x == p {
			return true
		}
	}

	return false
}

// LabFunctions returns the three reference functions of the root-finding lab:
//
//	f1(x) = ln(1−x) + 1/(x²+3)          pole at 1
//	f2(x) = x³ + 30·sin(x) − 12/x − 28  pole at 0
//	f3(x) = cos(3πx)/(x+2) − 1/(x+4)    poles at −2, −4
func LabFunctions() []Function {
	return []Function{
		{
			Name:    "Function 1",
			Formula: "ln(1-x) + 1/(x^2+3)",
			F: func(x float64) float64 {
				return math.Log(1-x) + 1/(x*x+3)
			},
			DF: func(x float64) float64 {
				d := x*x + 3
				return -1/(1-x) - 2*x/(d*d)
			},
			Poles: []float64{1},
		},
		{
			Name:    "Function 2",
			Formula: "x^3 + 30 sin(x) - 12/x - 28",
			F: func(x float64) float64 {
				return x*x*x + 30*math.Sin(x) - 12/x - 28
			},
			DF: func(x float64) float64 {
				return 3*x*x + 30*math.Cos(x) + 12/(x*x)
			},
			Poles: []float64{0},
		},
		{
			Name:    "Function 3",
			Formula: "cos(3 pi x)/(x+2) - 1/(x+4)",
			F: func(x float64) float64 {
				return math.Cos(3*math.Pi*x)/(x+2) - 1/(x+4)
			},
			DF: func(x float64) float64 {
				u, w := x+2, x+4
				return -3*math.Pi*math.Sin(3*math.Pi*x)/u -
					math.Cos(3*math.Pi*x)/(u*u) +
					1/(w*w)
			},
			Poles: []float64{-2, -4},
		},
	}
}
