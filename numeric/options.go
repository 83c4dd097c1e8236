// SPDX-License-Identifier: MIT

package numeric

import "fmt"

const (
	// DefaultNodes is the base Gauss–Legendre order of the adaptive integrator;
	// each panel is compared against the 2n-node rule.
	DefaultNodes = 10

	// DefaultAbsTol and DefaultRelTol bound |Q_2n - Q_n| per panel.
	DefaultAbsTol = 1e-10
	DefaultRelTol = 1e-10

	// DefaultMaxDepth caps recursive bisection of a panel.
	DefaultMaxDepth = 30

	// DefaultInnerRule and DefaultInnerPanels evaluate the inner products
	// ∫ x^i·f(x) dx of LeastSquares.
	DefaultInnerRule   = RuleTrapezoid
	DefaultInnerPanels = 1000
)

// Option configures Integrate and LeastSquares.
type Option func(*Options)

// Options is the resolved integrator configuration.
type Options struct {
	nodes    int
	absTol   float64
	relTol   float64
	maxDepth int

	innerRule   Rule
	innerPanels int
}

// WithNodes sets the base node count. Panics if n < 1.
func WithNodes(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("numeric: WithNodes(%d): n must be >= 1", n))
	}

	return func(o *Options) { o.nodes = n }
}

// WithTolerance sets the absolute and relative panel tolerances.
// Panics on negative values or when both are zero.
func WithTolerance(abs, rel float64) Option {
	if abs < 0 || rel < 0 || (abs == 0 && rel == 0) {
		panic("numeric: WithTolerance: tolerances must be >= 0 and not both zero")
	}

	return func(o *Options) { o.absTol, o.relTol = abs, rel }
}

// WithMaxDepth sets the recursion cap. Panics if d < 0.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("numeric: WithMaxDepth(%d): depth must be >= 0", d))
	}

	return func(o *Options) { o.maxDepth = d }
}

// WithInnerProduct sets the composite rule and panel count LeastSquares
// uses for ∫ x^i·f(x) dx. Panics on an unknown rule or panels < 1.
func WithInnerProduct(r Rule, panels int) Option {
	if !knownRule(r) {
		panic(fmt.Sprintf("numeric: WithInnerProduct(%q): unknown rule", r))
	}
	if panels < 1 {
		panic(fmt.Sprintf("numeric: WithInnerProduct(%d): panels must be >= 1", panels))
	}

	return func(o *Options) { o.innerRule, o.innerPanels = r, panels }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		nodes:       DefaultNodes,
		absTol:      DefaultAbsTol,
		relTol:      DefaultRelTol,
		maxDepth:    DefaultMaxDepth,
		innerRule:   DefaultInnerRule,
		innerPanels: DefaultInnerPanels,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
