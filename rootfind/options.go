// SPDX-License-Identifier: MIT

// Package rootfind: functional configuration for the iterative kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper that applies setters on top of the defaults.
package rootfind

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute tolerance shared by all stop criteria:
	// |f(c)| and bracket width for bisection, step size for Newton and secant.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps every kernel loop.
	DefaultMaxIterations = 1000

	// DefaultDerivativeFloor is the |f'(x)| below which Newton stops as singular.
	DefaultDerivativeFloor = 1e-15

	// DefaultSecantFloor is the |f(x1)-f(x0)| below which the secant is flat.
	DefaultSecantFloor = 1e-15

	// DefaultSamples is the grid size used by FindRoots.
	DefaultSamples = 1000
)

// Bracket construction around an estimate (Compare).
const (
	// DefaultBracketHalfWidth is the initial half-width of [r-h, r+h].
	DefaultBracketHalfWidth = 0.5

	// DefaultBracketStep widens both sides while no sign change is present.
	DefaultBracketStep = 0.1

	// DefaultBracketWidthCap stops widening once b-a exceeds it.
	DefaultBracketWidthCap = 2.0

	// DefaultStartOffset places Newton at r+d and the secant pair at r±d.
	DefaultStartOffset = 0.1
)

const (
	panicToleranceInvalid  = "rootfind: WithTolerance: tol must be finite and > 0"
	panicIterationsInvalid = "rootfind: WithMaxIterations: n must be > 0"
	panicFloorInvalid      = "rootfind: floor must be finite and >= 0"
	panicSamplesInvalid    = "rootfind: WithSamples: n must be >= 2"
	panicBracketInvalid    = "rootfind: WithBracket: half-width, step and cap must be finite and > 0"
	panicOffsetInvalid     = "rootfind: WithStartOffset: d must be finite and > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tol             float64
	maxIter         int
	derivativeFloor float64
	secantFloor     float64
	samples         int

	bracketHalf float64
	bracketStep float64
	bracketCap  float64
	startOffset float64
}

// Tolerance reports the configured absolute tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// MaxIterations reports the configured iteration cap.
func (o Options) MaxIterations() int { return o.maxIter }

// Samples reports the configured localization grid size.
func (o Options) Samples() int { return o.samples }

// WithTolerance sets the absolute tolerance used by every stop criterion.
// Panics if tol is not finite or not strictly positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the iteration cap. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithDerivativeFloor sets the |f'(x)| threshold below which Newton stops.
func WithDerivativeFloor(eps float64) Option {
	mustFloor(eps)

	return func(o *Options) { o.derivativeFloor = eps }
}

// WithSecantFloor sets the |f(x1)-f(x0)| threshold below which the secant stops.
func WithSecantFloor(eps float64) Option {
	mustFloor(eps)

	return func(o *Options) { o.secantFloor = eps }
}

// WithSamples sets the number of grid points used by FindRoots.
// Panics if n < 2 (a grid needs at least one adjacent pair).
func WithSamples(n int) Option {
	if n < 2 {
		panic(panicSamplesInvalid)
	}

	return func(o *Options) { o.samples = n }
}

// WithBracket configures bracket expansion in Compare: the initial
// half-width, the widening step and the width cap.
func WithBracket(halfWidth, step, widthCap float64) Option {
	for _, v := range []float64{halfWidth, step, widthCap} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			panic(panicBracketInvalid)
		}
	}

	return func(o *Options) {
		o.bracketHalf = halfWidth
		o.bracketStep = step
		o.bracketCap = widthCap
	}
}

// WithStartOffset sets the distance between the estimate and the Newton /
// secant starting points in Compare.
func WithStartOffset(d float64) Option {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		panic(panicOffsetInvalid)
	}

	return func(o *Options) { o.startOffset = d }
}

// NewOptions resolves user setters into an Options snapshot.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of the documented
// defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:             DefaultTolerance,
		maxIter:         DefaultMaxIterations,
		derivativeFloor: DefaultDerivativeFloor,
		secantFloor:     DefaultSecantFloor,
		samples:         DefaultSamples,
		bracketHalf:     DefaultBracketHalfWidth,
		bracketStep:     DefaultBracketStep,
		bracketCap:      DefaultBracketWidthCap,
		startOffset:     DefaultStartOffset,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func mustFloor(eps float64) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicFloorInvalid)
	}
}
