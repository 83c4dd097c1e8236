// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Rule names a composite Newton–Cotes style rule.
type Rule string

const (
	RuleMidpoint  Rule = "rectangle"
	RuleTrapezoid Rule = "trapezoid"
	RuleSimpson   Rule = "simpson"
)

// Rules lists the composite rules in report order.
var Rules = []Rule{RuleMidpoint, RuleTrapezoid, RuleSimpson}

func knownRule(r Rule) bool {
	for _, k := range Rules {
		if k == r {
			return true
		}
	}
	return false
}

// Composite applies rule r with n subintervals of [a, b].
func Composite(r Rule, f func(float64) float64, a, b float64, n int) (float64, error) {
	switch r {
	case RuleMidpoint:
		return Midpoint(f, a, b, n)
	case RuleTrapezoid:
		return Trapezoid(f, a, b, n)
	case RuleSimpson:
		return Simpson(f, a, b, n)
	default:
		return 0, numErrorf("Composite", fmt.Errorf("%q: %w", r, ErrUnknownRule))
	}
}

// Midpoint is the composite rectangle rule sampling each panel centre.
func Midpoint(f func(float64) float64, a, b float64, n int) (float64, error) {
	h, err := panelWidth("Midpoint", a, b, n)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += f(a + (float64(i)+0.5)*h)
	}

	return h * sum, nil
}

// Trapezoid is the composite trapezoidal rule.
func Trapezoid(f func(float64) float64, a, b float64, n int) (float64, error) {
	h, err := panelWidth("Trapezoid", a, b, n)
	if err != nil {
		return 0, err
	}
	xs := floats.Span(make([]float64, n+1), a, b)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	ys[0] /= 2
	ys[n] /= 2

	return h * floats.Sum(ys), nil
}

// Simpson is the composite Simpson rule. An odd n is raised to the next
// even count.
func Simpson(f func(float64) float64, a, b float64, n int) (float64, error) {
	if n%2 != 0 {
		n++
	}
	h, err := panelWidth("Simpson", a, b, n)
	if err != nil {
		return 0, err
	}
	xs := floats.Span(make([]float64, n+1), a, b)
	sum := f(xs[0]) + f(xs[n])
	for i := 1; i < n; i++ {
		w := 4.0
		if i%2 == 0 {
			w = 2
		}
		sum += w * f(xs[i])
	}

	return h * sum / 3, nil
}

func panelWidth(op string, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, numErrorf(op, ErrBadPanels)
	}
	if !Finite(a) || !Finite(b) {
		return 0, numErrorf(op, ErrBadInterval)
	}

	return (b - a) / float64(n), nil
}
