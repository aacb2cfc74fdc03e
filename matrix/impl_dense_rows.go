// SPDX-License-Identifier: MIT

// Package matrix - row/column helpers and in-place updates on Dense.
//
// Purpose:
//   - Row/column extraction (always copies), per-row/per-column sums.
//   - Sub-block copies (Partial) with inclusive bounds.
//   - In-place arithmetic that mutates the receiver (the only mutating
//     arithmetic in the package besides Invert).
//
// Vector arithmetic over row slices is delegated to gonum/floats.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	ctxRow       = "Row"
	ctxColumn    = "Column"
	ctxPartial   = "Partial"
	ctxAddRowVec = "AddRowVector"
	ctxAddIn     = "AddInPlace"
	ctxSubIn     = "SubInPlace"
)

// rowView returns the live slice of row i (no copy). Callers must bound-check.
func (m *Dense) rowView(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.rowView(i))

	return out, nil
}

// Column returns a copy of column j.
// Errors: ErrOutOfRange.
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxColumn, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RowSum returns Σ_j m[i,j].
func (m *Dense) RowSum(i int) (float64, error) {
	if i < 0 || i >= m.r {
		return 0, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return floats.Sum(m.rowView(i)), nil
}

// ColumnSum returns Σ_i m[i,j].
func (m *Dense) ColumnSum(j int) (float64, error) {
	col, err := m.Column(j)
	if err != nil {
		return 0, err
	}

	return floats.Sum(col), nil
}

// SumOfRows adds all rows together and returns the resulting vector
// (i.e. the column sums), length Cols().
// Complexity: O(r*c).
func (m *Dense) SumOfRows() []float64 {
	out := make([]float64, m.c)
	var i int
	for i = 0; i < m.r; i++ {
		floats.Add(out, m.rowView(i))
	}

	return out
}

// SumOfElements returns the sum of all entries.
func (m *Dense) SumOfElements() float64 { return floats.Sum(m.data) }

// Partial copies the inclusive block [rowStart..rowEnd]×[colStart..colEnd].
// MAIN DESCRIPTION:
//   - Bounds are inclusive on both ends; the result is an independent copy.
//
// Errors:
//   - ErrBadShape when start > end or any bound lies outside the matrix.
//
// Complexity:
//   - Time O(rows*cols) of the block.
func (m *Dense) Partial(rowStart, rowEnd, colStart, colEnd int) (*Dense, error) {
	if rowStart < 0 || colStart < 0 || rowStart > rowEnd || colStart > colEnd ||
		rowEnd >= m.r || colEnd >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d..%d,%d..%d): %w",
			ctxPartial, rowStart, rowEnd, colStart, colEnd, ErrBadShape)
	}
	rowsIdx := make([]int, rowEnd-rowStart+1)
	colsIdx := make([]int, colEnd-colStart+1)
	var k int
	for k = range rowsIdx {
		rowsIdx[k] = rowStart + k
	}
	for k = range colsIdx {
		colsIdx[k] = colStart + k
	}

	return m.Induced(rowsIdx, colsIdx)
}

// AddInPlace performs m += b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) AddInPlace(b Matrix) error {
	return m.combineInPlace(ctxAddIn, b, 1)
}

// SubInPlace performs m -= b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) SubInPlace(b Matrix) error {
	return m.combineInPlace(ctxSubIn, b, -1)
}

// combineInPlace implements m += sign*b with a flat fast path for *Dense.
func (m *Dense) combineInPlace(tag string, b Matrix, sign float64) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return fmt.Errorf("Dense.%s: %w", tag, err)
	}
	if bd, ok := b.(*Dense); ok {
		floats.AddScaled(m.data, sign, bd.data)

		return nil
	}
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = b.At(i, j); err != nil {
				return fmt.Errorf("Dense.%s: At(%d,%d): %w", tag, i, j, err)
			}
			m.data[i*m.c+j] += sign * v
		}
	}

	return nil
}

// ScaleInPlace multiplies every entry by alpha.
func (m *Dense) ScaleInPlace(alpha float64) {
	floats.Scale(alpha, m.data)
}

// DivideInPlace divides every entry by alpha.
// Division by zero follows IEEE-754 (±Inf/NaN entries).
func (m *Dense) DivideInPlace(alpha float64) {
	var k int
	for k = range m.data {
		m.data[k] /= alpha
	}
}

// AddRowVector adds v to row i in place.
// Errors: ErrOutOfRange (row), ErrColumnMismatch (len(v) != Cols()).
func (m *Dense) AddRowVector(i int, v []float64) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.%s(%d): %w", ctxAddRowVec, i, ErrOutOfRange)
	}
	if err := ValidateColVecLen(m, v); err != nil {
		return fmt.Errorf("Dense.%s(%d): %w", ctxAddRowVec, i, err)
	}
	floats.Add(m.rowView(i), v)

	return nil
}

// NormalizeRows divides each row by its own sum, turning non-negative
// count tables into row-stochastic matrices.
// A zero-sum row divides by zero and yields NaN/Inf entries.
// Complexity: O(r*c).
func (m *Dense) NormalizeRows() {
	inv := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		inv[i] = 1 / floats.Sum(m.rowView(i))
	}
	// Shapes match by construction, so ewScaleRows cannot fail here.
	out, _ := ewScaleRows(m, inv)
	m.data = out.data
}
