// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates non-positive dimensions or ragged row data.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands whose sizes do not conform.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf indicates a NaN or ±Inf entry under strict validation.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil matrix operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular indicates a pivot whose magnitude does not exceed the
	// configured epsilon after row exchanges.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation tags used by matrixErrorf.
const (
	opNewDense = "NewDense"
	opFromRows = "FromRows"
	opMatVec   = "MatVec"
	opLU       = "LU"
	opSolve    = "Solve"
)

// matrixErrorf wraps err as "<tag>: <err>". Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an index error with the Dense method and position.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
