// SPDX-License-Identifier: MIT
// Package dataio: sentinel error set.

package dataio

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a source holds no data rows.
	ErrEmptyInput = errors.New("dataio: no data rows")

	// ErrMalformed indicates a field or line that cannot be parsed as expected.
	ErrMalformed = errors.New("dataio: malformed input")

	// ErrUnknownColumn indicates a lookup by a name or index the table lacks.
	ErrUnknownColumn = errors.New("dataio: unknown column")
)

const (
	opReadTable  = "ReadTable"
	opLoadTable  = "LoadTable"
	opFloats     = "Floats"
	opStrings    = "Strings"
	opScalar     = "LoadScalar"
	opPolynomial = "LoadPolynomial"
	opNodes      = "LoadNodes"
)

// dataErrorf wraps err with an operation tag.
func dataErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// lineErrorf wraps ErrMalformed with the operation, the 1-based source line
// and a short description.
func lineErrorf(op string, line int, format string, args ...any) error {
	return fmt.Errorf("%s: line %d: %s: %w", op, line, fmt.Sprintf(format, args...), ErrMalformed)
}
