// SPDX-License-Identifier: MIT

package rootfind

import (
	"gonum.org/v1/gonum/floats"
)

// FindRoots samples f on an evenly spaced grid over [a, b] and refines every
// adjacent pair with finite, strictly opposite-sign values via Bisection.
//
// Behavior highlights:
//   - Grid size comes from WithSamples (default 1000).
//   - Pairs with a non-finite or same-sign value report nothing.
//   - Roots are returned in grid order; near-identical roots from adjacent
//     gaps are not merged.
//   - A root landing exactly on a grid point produces no sign change and is
//     not reported.
//   - Deterministic: identical inputs give identical output.
//
// Errors:
//   - ErrNilFunction, ErrBadInterval (a >= b or non-finite bounds).
func FindRoots(f Func, a, b float64, opts ...Option) ([]float64, error) {
	if f == nil {
		return nil, rootErrorf(opFindRoots, ErrNilFunction)
	}
	if !isFinite(a) || !isFinite(b) || a >= b {
		return nil, rootErrorf(opFindRoots, ErrBadInterval)
	}
	o := gatherOptions(opts...)

	// Stage 1: sample.
	xs := floats.Span(make([]float64, o.samples), a, b)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	// Stage 2: refine each sign change.
	var roots []float64
	for i := 0; i+1 < len(xs); i++ {
		if !opposite(ys[i], ys[i+1]) {
			continue
		}
		res, err := Bisection(f, xs[i], xs[i+1], opts...)
		if err != nil {
			continue
		}
		roots = append(roots, res.Root)
	}

	return roots, nil
}
