// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const (
	// DefaultEpsilon is the pivot threshold of LU: a pivot is singular when
	// its magnitude is at most epsilon. Zero rejects exact zeros only.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf rejects NaN and ±Inf entries before factoring.
	DefaultValidateNaNInf = true
)

// Option configures LU and Solve.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// WithEpsilon sets the pivot threshold. Panics on a negative or
// non-finite eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(fmt.Sprintf("matrix: WithEpsilon(%g): eps must be finite and >= 0", eps))
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf lets non-finite entries through to the
// factorisation. They propagate into the solution, or surface as
// ErrSingular when one lands on a pivot.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
