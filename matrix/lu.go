// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Factors is the result of LU: P·A = L·U with L unit lower triangular.
// L (below the diagonal) and U (on and above it) share one matrix.
type Factors struct {
	lu   *Dense
	perm []int
	sign float64
}

// LU factors the square matrix m with partial pivoting.
//
// Implementation:
//   - Stage 1: validate (non-nil, square, finite unless WithNoValidateNaNInf)
//     and copy m, so the input is never mutated.
//   - Stage 2: for each column k pick the row i ≥ k with the largest |a(i,k)|
//     (lowest index on ties), swap it into place, then eliminate below the
//     pivot storing the multipliers in the lower triangle.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf.
//   - ErrSingular when the best pivot of a column is at most epsilon.
//
// Complexity: Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*Factors, error) {
	o := gatherOptions(opts...)
	if isNil(m) {
		return nil, matrixErrorf(opLU, ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return nil, matrixErrorf(opLU, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if o.validateNaNInf {
		for idx, v := range a.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opLU, fmt.Errorf("(%d,%d)=%g: %w", idx/a.c, idx%a.c, v, ErrNaNInf))
			}
		}
	}

	n := a.r
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	for k := 0; k < n; k++ {
		p, best := k, math.Abs(a.data[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if !(best > o.eps) {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			swapRows(a, p, k)
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}

		pivot := a.data[k*n+k]
		for i := k + 1; i < n; i++ {
			base := i * n
			l := a.data[base+k] / pivot
			a.data[base+k] = l
			if l == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				a.data[base+j] -= l * a.data[k*n+j]
			}
		}
	}

	return &Factors{lu: a, perm: perm, sign: sign}, nil
}

func swapRows(a *Dense, i, k int) {
	ri := a.data[i*a.c : (i+1)*a.c]
	rk := a.data[k*a.c : (k+1)*a.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

// L returns the unit lower triangular factor.
func (f *Factors) L() *Dense {
	n := f.lu.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		copy(out.data[i*n:i*n+i], f.lu.data[i*n:i*n+i])
		out.data[i*n+i] = 1
	}

	return out
}

// U returns the upper triangular factor.
func (f *Factors) U() *Dense {
	n := f.lu.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		copy(out.data[i*n+i:(i+1)*n], f.lu.data[i*n+i:(i+1)*n])
	}

	return out
}

// Perm returns the row permutation: row i of P·A is row Perm()[i] of A.
func (f *Factors) Perm() []int { return append([]int(nil), f.perm...) }

// Det returns the determinant of the factored matrix.
func (f *Factors) Det() float64 {
	n := f.lu.r
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu.data[i*n+i]
	}

	return det
}

// Solve returns x with A·x = b by forward then back substitution.
func (f *Factors) Solve(b []float64) ([]float64, error) {
	n := f.lu.r
	if len(b) != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("len(b)=%d, n=%d: %w", len(b), n, ErrDimensionMismatch))
	}
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[f.perm[i]]
		for k := 0; k < i; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum
	}
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < n; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum / f.lu.data[i*n+i]
	}

	return x, nil
}

// Solve factors m and solves m·x = b.
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}
