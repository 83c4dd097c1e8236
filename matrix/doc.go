// SPDX-License-Identifier: MIT

// Package matrix provides a small dense linear-algebra kernel: a row-major
// Dense type, matrix-vector products and an LU factorisation with partial
// pivoting used to solve square systems.
//
// All operations validate shapes up front and return sentinel errors
// wrapped with the operation name, so callers can match them with
// errors.Is. Loop orders are fixed and pivot ties resolve to the lowest
// row, so results are reproducible bit for bit.
//
// The numeric package builds its least-squares polynomial fits on Solve.
package matrix
