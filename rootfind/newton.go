// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Newton runs Newton's method x ← x − f(x)/f'(x) from x0.
//
// Each iteration appends the current x, then:
//   - f(x) or f'(x) non-finite  → stop, ReasonNonFinite;
//   - |f'(x)| < derivative floor → stop, ReasonSingularDerivative;
//   - |x_new − x| < tol          → converged, Root = x_new.
//
// On converge Root is the final step x_new, which is not appended to the
// trajectory. Partial results report the last appended x as Root.
//
// If df is nil the derivative is estimated with a central finite difference.
// There is no guarantee of converging to the nearest root.
func Newton(f, df Func, x0 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, rootErrorf(opNewton, ErrNilFunction)
	}
	if !isFinite(x0) {
		return Result{}, rootErrorf(opNewton, ErrBadStart)
	}
	if df == nil {
		df = CentralDerivative(f)
	}
	o := gatherOptions(opts...)
	res := Result{Method: MethodNewton, Approximations: make([]float64, 0, 16)}

	x := x0
	var fx, dfx, next float64
	for i := 0; i < o.maxIter; i++ {
		res.Approximations = append(res.Approximations, x)

		fx, dfx = f(x), df(x)
		if !isFinite(fx) || !isFinite(dfx) {
			return finalize(res, ReasonNonFinite), nil
		}
		if math.Abs(dfx) < o.derivativeFloor {
			return finalize(res, ReasonSingularDerivative), nil
		}

		next = x - fx/dfx
		if math.Abs(next-x) < o.tol {
			res.Root = next
			res.Reason = ReasonConverged
			res.Converged = true
			return res, nil
		}
		x = next
	}

	return finalize(res, ReasonIterationCap), nil
}

// CentralDerivative returns a Func estimating f' with a central difference.
func CentralDerivative(f Func) Func {
	settings := &fd.Settings{Formula: fd.Central}

	return func(x float64) float64 {
		return fd.Derivative(f, x, settings)
	}
}
