// SPDX-License-Identifier: MIT

package rootfind

// Comparison holds the three methods run against one root estimate.
type Comparison struct {
	Function string
	Estimate float64
	Bracket  [2]float64
	Results  []Result // bisection (if bracketed), newton, secant
}

// Result returns the result for method m, if present.
func (c Comparison) Result(m Method) (Result, bool) {
	for _, r := range c.Results {
		if r.Method == m {
			return r, true
		}
	}

	return Result{}, false
}

// Compare runs bisection, Newton and secant around an approximate root.
//
// Implementation:
//   - Stage 1: bracket = [r−h, r+h]; widen both sides by step while the
//     endpoint values show no finite sign change, stopping once the width
//     exceeds the cap (defaults 0.5 / 0.1 / 2, see WithBracket).
//   - Stage 2: bisection on the bracket; omitted if it yields no result.
//   - Stage 3: Newton from r+d, secant from (r−d, r+d) (d = WithStartOffset).
//
// Newton uses fn.DF when present, otherwise a finite-difference derivative.
func Compare(fn Function, estimate float64, opts ...Option) (Comparison, error) {
	if fn.F == nil {
		return Comparison{}, rootErrorf(opCompare, ErrNilFunction)
	}
	if !isFinite(estimate) {
		return Comparison{}, rootErrorf(opCompare, ErrBadStart)
	}
	o := gatherOptions(opts...)
	f := Func(fn.Eval)

	// Stage 1: bracket.
	a, b := expandBracket(f, estimate, o)
	cmp := Comparison{Function: fn.Name, Estimate: estimate, Bracket: [2]float64{a, b}}

	// Stage 2: bisection.
	if res, err := Bisection(f, a, b, opts...); err == nil {
		cmp.Results = append(cmp.Results, res)
	}

	// Stage 3: open methods.
	newton, err := Newton(f, fn.Derivative, estimate+o.startOffset, opts...)
	if err != nil {
		return Comparison{}, rootErrorf(opCompare, err)
	}
	cmp.Results = append(cmp.Results, newton)

	secant, err := Secant(f, estimate-o.startOffset, estimate+o.startOffset, opts...)
	if err != nil {
		return Comparison{}, rootErrorf(opCompare, err)
	}
	cmp.Results = append(cmp.Results, secant)

	return cmp, nil
}

// expandBracket widens [r−h, r+h] until it brackets a sign change or the
// width cap is exceeded. The k-th bracket is [r−(h+k·step), r+(h+k·step)];
// the half-width is counted, not measured from a and b, so the loop ends even
// when step is below the spacing of floats near r.
func expandBracket(f Func, r float64, o Options) (float64, float64) {
	half := o.bracketHalf
	a, b := r-half, r+half
	for k := 1; !brackets(f(a), f(b)) && 2*half <= o.bracketCap; k++ {
		half = o.bracketHalf + float64(k)*o.bracketStep
		a, b = r-half, r+half
	}

	return a, b
}

// brackets reports whether fa, fb are finite and fa·fb <= 0.
func brackets(fa, fb float64) bool {
	return isFinite(fa) && isFinite(fb) && fa*fb <= 0
}
