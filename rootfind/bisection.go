// SPDX-License-Identifier: MIT

package rootfind

import "math"

// Bisection refines a root inside the bracket [a, b].
//
// Algorithm Outline:
//  1. Require f(a), f(b) finite with f(a)·f(b) <= 0, else ErrNoSignChange.
//     An endpoint with f == 0 is returned at once as a converged result.
//  2. Repeat up to MaxIterations:
//     c = (a+b)/2 is appended to the trajectory;
//     stop if |f(c)| < tol or |b-a| < tol;
//     keep the half whose endpoints still change sign.
//  3. At the cap the last midpoint is returned with ReasonIterationCap.
//
// A non-finite f(c) (a pole inside the bracket) stops with ReasonNonFinite.
//
// Complexity:
//
//	Time   = O(log2((b-a)/tol)) evaluations, bounded by MaxIterations
//	Memory = O(iterations) for the trajectory
func Bisection(f Func, a, b float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, rootErrorf(opBisection, ErrNilFunction)
	}
	o := gatherOptions(opts...)
	res := Result{Method: MethodBisection}

	// Stage 1: validate the bracket.
	fa, fb := f(a), f(b)
	if !isFinite(fa) || !isFinite(fb) || fa*fb > 0 {
		return Result{}, rootErrorf(opBisection, ErrNoSignChange)
	}
	if fa == 0 {
		res.Approximations = []float64{a}
		return finalize(res, ReasonConverged), nil
	}
	if fb == 0 {
		res.Approximations = []float64{b}
		return finalize(res, ReasonConverged), nil
	}

	// Stage 2: halve until a tolerance criterion holds.
	res.Approximations = make([]float64, 0, 64)
	var c, fc float64
	for i := 0; i < o.maxIter; i++ {
		c = 0.5 * (a + b)
		res.Approximations = append(res.Approximations, c)

		fc = f(c)
		if !isFinite(fc) {
			return finalize(res, ReasonNonFinite), nil
		}
		if math.Abs(fc) < o.tol || math.Abs(b-a) < o.tol {
			return finalize(res, ReasonConverged), nil
		}

		if fa*fc < 0 {
			b = c
		} else {
			a, fa = c, fc
		}
	}

	// Stage 3: cap reached, report the last midpoint.
	return finalize(res, ReasonIterationCap), nil
}
