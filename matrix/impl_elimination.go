// SPDX-License-Identifier: MIT
// Package matrix - elimination kernels: Determinant and full-pivot Gauss–Jordan inversion.
//
// Purpose:
//   - Determinant by plain forward elimination (no pivoting, early exit on a zero product).
//   - In-place inversion by Gauss–Jordan with full pivoting against an
//     identity-seeded companion buffer.
//
// Determinism:
//   - Pivot search scans candidate rows then columns in ascending order and
//     keeps the first strictly larger magnitude, so ties resolve to the
//     earliest row-major candidate.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Determinant returns det(M) computed by forward elimination on a private copy.
//
// Implementation:
//   - Stage 1: validate non-nil and square; copy M.
//   - Stage 2: for each i multiply the running product by A[i,i]; stop as soon
//     as it is exactly zero; otherwise eliminate column i below the diagonal:
//     A[j,k] -= A[i,k] * (A[j,i]/A[i,i]) for j > i, k ≥ i.
//
// Behavior highlights:
//   - No row exchanges. A zero leading entry ends the computation with 0 even
//     when the matrix is non-singular (e.g. [[0,1],[1,0]] yields 0).
//   - M is never modified.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - For a pivoted determinant use gonum: mat.Det(m.ToMat()).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	a, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := a.r
	det := 1.0
	var i, j, k int
	var ratio float64
	for i = 0; i < n; i++ {
		det *= a.data[i*n+i]
		if det == 0 {
			break
		}
		for j = i + 1; j < n; j++ {
			ratio = a.data[j*n+i] / a.data[i*n+i]
			for k = i; k < n; k++ {
				a.data[j*n+k] -= a.data[i*n+k] * ratio
			}
		}
	}

	return det, nil
}

// Invert replaces the receiver by its inverse using Gauss–Jordan elimination
// with full pivoting.
//
// Implementation:
//   - Stage 1: validate receiver (non-nil, square); seed companion B = I.
//   - Stage 2: n pivot steps. Each step picks the largest |A[j,k]| over rows
//     and columns not yet used as pivots, moves it onto the diagonal by a row
//     exchange (mirrored in B), normalizes the pivot row and eliminates the
//     pivot column from every other row (in A and B).
//   - Stage 3: undo the recorded column exchanges in reverse order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when no non-zero pivot candidate remains, or the pivot is exactly 0.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the companion plus O(n) bookkeeping.
//
// Notes:
//   - On ErrSingular the receiver is left partially eliminated; call Invert
//     on a Clone (or use Inverse) when the original must survive a failure.
//   - Kernel writes bypass the receiver's NaN/Inf policy.
func (m *Dense) Invert() error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opInvert, err)
	}
	if _, _, err := m.gaussJordan(); err != nil {
		return matrixErrorf(opInvert, err)
	}

	return nil
}

// gaussJordan runs the full-pivot elimination on a validated square receiver
// and returns the pivot (row, column) chosen at each step.
func (m *Dense) gaussJordan() (indxr, indxc []int, err error) {
	n := m.r
	a := m.data

	b := make([]float64, n*n)
	var i int
	for i = 0; i < n; i++ {
		b[i*n+i] = 1
	}

	pivoted := make([]bool, n) // columns already used as pivots
	indxr = make([]int, n)     // pivot row per step
	indxc = make([]int, n)     // pivot column per step

	var (
		j, k, ll     int
		irow, icol   int
		big, pivinv  float64
		dum          float64
		rowP, rowLL  []float64
		bRowP, bRowL []float64
	)
	for i = 0; i < n; i++ {
		// Full pivot search over the unreduced block.
		big = 0
		irow, icol = -1, -1
		for j = 0; j < n; j++ {
			if pivoted[j] {
				continue
			}
			for k = 0; k < n; k++ {
				if pivoted[k] {
					continue
				}
				if v := math.Abs(a[j*n+k]); v > big {
					big = v
					irow, icol = j, k
				}
			}
		}
		if irow < 0 {
			return nil, nil, ErrSingular
		}
		pivoted[icol] = true

		// Bring the pivot onto the diagonal.
		if irow != icol {
			swapRows(a, n, irow, icol)
			swapRows(b, n, irow, icol)
		}
		indxr[i] = irow
		indxc[i] = icol

		if a[icol*n+icol] == 0 {
			return nil, nil, ErrSingular
		}
		pivinv = 1 / a[icol*n+icol]
		a[icol*n+icol] = 1
		rowP = a[icol*n : (icol+1)*n]
		bRowP = b[icol*n : (icol+1)*n]
		floats.Scale(pivinv, rowP)
		floats.Scale(pivinv, bRowP)

		// Eliminate the pivot column from every other row.
		for ll = 0; ll < n; ll++ {
			if ll == icol {
				continue
			}
			rowLL = a[ll*n : (ll+1)*n]
			bRowL = b[ll*n : (ll+1)*n]
			dum = rowLL[icol]
			rowLL[icol] = 0
			floats.AddScaled(rowLL, -dum, rowP)
			floats.AddScaled(bRowL, -dum, bRowP)
		}
	}

	// Unscramble column exchanges in reverse pivot order.
	for i = n - 1; i >= 0; i-- {
		if indxr[i] != indxc[i] {
			swapCols(a, n, indxr[i], indxc[i])
		}
	}

	return indxr, indxc, nil
}

// Inverse returns M⁻¹ as a new matrix; M is left untouched, also on failure.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	res, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = res.Invert(); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}

// swapRows exchanges rows p and q of an n-column row-major buffer.
func swapRows(buf []float64, n, p, q int) {
	rp := buf[p*n : (p+1)*n]
	rq := buf[q*n : (q+1)*n]
	for k := range rp {
		rp[k], rq[k] = rq[k], rp[k]
	}
}

// swapCols exchanges columns p and q of an n×n row-major buffer.
func swapCols(buf []float64, n, p, q int) {
	for r := 0; r < n; r++ {
		buf[r*n+p], buf[r*n+q] = buf[r*n+q], buf[r*n+p]
	}
}
