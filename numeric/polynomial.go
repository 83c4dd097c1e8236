// SPDX-License-Identifier: MIT

package numeric

// Polynomial holds coefficients from the highest power down to the constant
// term: {a_n, ..., a_1, a_0}.
type Polynomial []float64

// Degree returns len(p)-1, or -1 for the empty polynomial.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Eval evaluates p at x with Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	var acc float64
	for _, c := range p {
		acc = acc*x + c
	}

	return acc
}

// Antiderivative returns the antiderivative with zero constant term.
func (p Polynomial) Antiderivative() Polynomial {
	n := len(p)
	out := make(Polynomial, n+1)
	for i, c := range p {
		out[i] = c / float64(n-i)
	}

	return out
}

// Integral returns the exact definite integral of p over [a, b].
func (p Polynomial) Integral(a, b float64) float64 {
	F := p.Antiderivative()

	return F.Eval(b) - F.Eval(a)
}
