// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const opFromMat = "FromMat"

// ToMat copies the receiver into a new gonum *mat.Dense.
// The result shares no memory with m, so either side can be mutated freely.
//
// AI-Hints:
//   - Use for routines this package does not provide (LU/QR/SVD, pivoted
//     determinants, solves): mat.Det(m.ToMat()), mat.NewDense(...).Solve, etc.
func (m *Dense) ToMat() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}

// FromMat copies any gonum matrix into a new Dense with the default numeric policy.
//
// Errors:
//   - ErrNilMatrix for a nil argument.
//   - ErrInvalidDimensions for an empty (0×k) source.
//   - ErrNaNInf when the source carries NaN/±Inf.
//
// Complexity: O(r*c).
func FromMat(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromMat, ErrNilMatrix)
	}
	rows, cols := a.Dims()
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromMat, err)
	}

	var i, j int
	var row []float64
	for i = 0; i < rows; i++ {
		// mat.Row copies through the fast RawRowView path for *mat.Dense.
		row = mat.Row(m.rowView(i), i, a)
		for j = range row {
			if math.IsNaN(row[j]) || math.IsInf(row[j], 0) {
				return nil, matrixErrorf(opFromMat, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
	}

	return m, nil
}
