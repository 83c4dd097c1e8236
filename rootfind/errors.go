// SPDX-License-Identifier: MIT
// Package rootfind: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag); callers match them via errors.Is.

package rootfind

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSignChange is returned by Bisection when the bracket endpoints are
	// not finite or do not have opposite signs. No result is produced.
	ErrNoSignChange = errors.New("rootfind: no sign change in bracket")

	// ErrBadInterval indicates a scan interval with a >= b or non-finite bounds.
	ErrBadInterval = errors.New("rootfind: invalid interval")

	// ErrNilFunction indicates that a nil Func was passed to a kernel.
	ErrNilFunction = errors.New("rootfind: nil function")

	// ErrBadStart indicates a non-finite starting point for Newton or secant.
	ErrBadStart = errors.New("rootfind: non-finite starting point")
)

// Operation tags used for error wrapping.
const (
	opBisection = "Bisection"
	opNewton    = "Newton"
	opSecant    = "Secant"
	opFindRoots = "FindRoots"
	opCompare   = "Compare"
)

// rootErrorf wraps err with an operation tag, keeping errors.Is matching intact.
func rootErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
