// SPDX-License-Identifier: MIT

package labs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLab indicates a report name that is not registered.
	ErrUnknownLab = errors.New("labs: unknown report")

	// ErrNoRoots indicates a function with no root in the scan interval.
	ErrNoRoots = errors.New("labs: no roots found")

	// ErrNoData indicates a step whose every input was missing or empty.
	ErrNoData = errors.New("labs: no input data")

	// ErrBadTable indicates an input table with the wrong shape.
	ErrBadTable = errors.New("labs: malformed input table")
)

func labErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
