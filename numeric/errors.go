// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrBadInterval indicates non-finite bounds or an empty breakpoint list.
	ErrBadInterval = errors.New("numeric: invalid interval")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("numeric: length mismatch")

	// ErrEmpty indicates an empty input where at least one value is required.
	ErrEmpty = errors.New("numeric: empty input")

	// ErrBadNodes indicates a non-positive Gauss–Legendre node count.
	ErrBadNodes = errors.New("numeric: node count must be >= 1")

	// ErrBadPanels indicates a non-positive subinterval count for a composite rule.
	ErrBadPanels = errors.New("numeric: panel count must be >= 1")

	// ErrUnknownRule indicates a composite rule name outside Rules.
	ErrUnknownRule = errors.New("numeric: unknown composite rule")

	// ErrBadDegree indicates a negative polynomial degree.
	ErrBadDegree = errors.New("numeric: degree must be >= 0")

	// ErrNotIncreasing indicates interpolation abscissae that are not strictly increasing.
	ErrNotIncreasing = errors.New("numeric: abscissae not strictly increasing")

	// ErrNonFinite indicates an integral that evaluated to NaN or ±Inf.
	ErrNonFinite = errors.New("numeric: non-finite result")
)

func numErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
