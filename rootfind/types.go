// SPDX-License-Identifier: MIT

package rootfind

import "math"

// Func is a real scalar function. Undefined points return a non-finite value.
type Func func(x float64) float64

// Method names an iterative root-finding method.
type Method string

const (
	MethodBisection Method = "bisection"
	MethodNewton    Method = "newton"
	MethodSecant    Method = "secant"
)

// Reason explains why an iteration stopped.
type Reason int

const (
	// ReasonConverged: a tolerance criterion was met.
	ReasonConverged Reason = iota
	// ReasonIterationCap: the loop hit MaxIterations.
	ReasonIterationCap
	// ReasonSingularDerivative: Newton saw |f'(x)| below the derivative floor.
	ReasonSingularDerivative
	// ReasonFlatSecant: secant saw |f(x1)-f(x0)| below the secant floor.
	ReasonFlatSecant
	// ReasonNonFinite: a function or derivative value was NaN or ±Inf.
	ReasonNonFinite
)

// String returns a short lower-case label for logs and tables.
func (r Reason) String() string {
	switch r {
	case ReasonConverged:
		return "converged"
	case ReasonIterationCap:
		return "iteration-cap"
	case ReasonSingularDerivative:
		return "singular-derivative"
	case ReasonFlatSecant:
		return "flat-secant"
	case ReasonNonFinite:
		return "non-finite"
	default:
		return "unknown"
	}
}

// Result is the outcome of one method invocation.
//
// Fields:
//   - Method:          which kernel produced the result.
//   - Root:            final estimate. For partial results this is the last
//     appended approximation.
//   - Approximations:  convergence trajectory in iteration order.
//   - Converged:       true iff Reason == ReasonConverged.
//   - Reason:          stop cause.
type Result struct {
	Method         Method
	Root           float64
	Approximations []float64
	Converged      bool
	Reason         Reason
}

// Iterations returns the length of the convergence trajectory.
func (r Result) Iterations() int { return len(r.Approximations) }

// AbsErrors returns |x_i - Root| for every approximation.
func (r Result) AbsErrors() []float64 {
	out := make([]float64, len(r.Approximations))
	for i, x := range r.Approximations {
		out[i] = math.Abs(x - r.Root)
	}

	return out
}

// FinalError returns |last approximation - Root|, or NaN for an empty trajectory.
func (r Result) FinalError() float64 {
	n := len(r.Approximations)
	if n == 0 {
		return math.NaN()
	}

	return math.Abs(r.Approximations[n-1] - r.Root)
}

// finalize fills Root/Converged/Reason from the trajectory tail.
func finalize(r Result, reason Reason) Result {
	if n := len(r.Approximations); n > 0 {
		r.Root = r.Approximations[n-1]
	}
	r.Reason = reason
	r.Converged = reason == ReasonConverged

	return r
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// opposite reports whether fa and fb are finite with strictly opposite signs.
func opposite(fa, fb float64) bool {
	return isFinite(fa) && isFinite(fb) && fa*fb < 0
}
