// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
)

var (
	// ErrBadGrid indicates an empty or ragged panel grid.
	ErrBadGrid = errors.New("chart: grid must be non-empty and rectangular")

	// ErrBadRange indicates an axis range with Min >= Max, or a non-positive
	// bound on a log axis.
	ErrBadRange = errors.New("chart: invalid axis range")

	// ErrLengthMismatch indicates a series or bar set whose slices differ in length.
	ErrLengthMismatch = errors.New("chart: length mismatch")
)

func chartErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
