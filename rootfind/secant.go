// SPDX-License-Identifier: MIT

package rootfind

import "math"

// Secant runs the secant method from the pair (x0, x1).
//
// The trajectory starts as [x0, x1]; every step appends
//
//	x2 = x1 − f(x1)·(x1 − x0)/(f(x1) − f(x0))
//
// and stops when |x2 − x1| < tol (converged), when |f(x1) − f(x0)| falls
// below the secant floor (ReasonFlatSecant) or when a function value is
// non-finite (ReasonNonFinite).
func Secant(f Func, x0, x1 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, rootErrorf(opSecant, ErrNilFunction)
	}
	if !isFinite(x0) || !isFinite(x1) {
		return Result{}, rootErrorf(opSecant, ErrBadStart)
	}
	o := gatherOptions(opts...)
	res := Result{Method: MethodSecant, Approximations: make([]float64, 0, 16)}
	res.Approximations = append(res.Approximations, x0, x1)

	f0, f1 := f(x0), f(x1)
	var x2 float64
	for i := 0; i < o.maxIter; i++ {
		if !isFinite(f0) || !isFinite(f1) {
			return finalize(res, ReasonNonFinite), nil
		}
		if math.Abs(f1-f0) < o.secantFloor {
			return finalize(res, ReasonFlatSecant), nil
		}

		x2 = x1 - f1*(x1-x0)/(f1-f0)
		res.Approximations = append(res.Approximations, x2)
		if math.Abs(x2-x1) < o.tol {
			return finalize(res, ReasonConverged), nil
		}

		x0, f0 = x1, f1
		x1, f1 = x2, f(x2)
	}

	return finalize(res, ReasonIterationCap), nil
}
