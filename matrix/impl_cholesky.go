// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cholesky factors a symmetric positive-definite matrix as A = L·Lᵀ and
// returns the lower-triangular factor L as a new matrix.
//
// Implementation:
//   - Stage 1: validate non-nil, square, exactly symmetric.
//   - Stage 2: row-by-row recurrence over the upper triangle of A:
//     s = A[i,j] - Σ_{k<i} L[i,k]·L[j,k];
//     diagonal: L[i,i] = √s (requires s > 0); below: L[j,i] = s / L[i,i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotSymmetric (validation order).
//   - ErrNotPositiveDefinite when a diagonal residual s ≤ 0.
//
// Complexity:
//   - Time O(n³/3), Space O(n²) for L. The partial dot products run on
//     contiguous row prefixes of L.
func Cholesky(m Matrix) (*Dense, error) {
	if err := ValidateSymmetric(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := a.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var i, j int
	var sum float64
	var rowI, rowJ []float64
	for i = 0; i < n; i++ {
		rowI = l.data[i*n : i*n+i] // L[i,0..i-1]
		for j = i; j < n; j++ {
			rowJ = l.data[j*n : j*n+i] // L[j,0..i-1]
			sum = a.data[i*n+j] - floats.Dot(rowI, rowJ)
			if j == i {
				if sum <= 0 {
					return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
				}
				l.data[i*n+i] = math.Sqrt(sum)
			} else {
				l.data[j*n+i] = sum / l.data[i*n+i]
			}
		}
	}

	return l, nil
}
