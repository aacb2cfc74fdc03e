// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
// This file contains ONLY domain-facing types: the Matrix interface consumed
// by every kernel and the Eigenpair value produced by Eigen.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept any Matrix and take a flat-slice fast path for *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Eigenpair is one (eigenvalue, eigenvector) result of Eigen.
// Values are immutable: the eigenvector is copied on the way in and out.
type Eigenpair struct {
	value  float64   // eigenvalue λ
	vector []float64 // unit eigenvector, len == matrix order
}

// Eigenvalue returns λ.
func (e Eigenpair) Eigenvalue() float64 { return e.value }

// Eigenvector returns a copy of the eigenvector associated with λ.
func (e Eigenpair) Eigenvector() []float64 {
	out := make([]float64, len(e.vector))
	copy(out, e.vector)

	return out
}

// Len returns the eigenvector length (the order of the decomposed matrix).
func (e Eigenpair) Len() int { return len(e.vector) }

// CompareEigenpairs orders eigenpairs by descending eigenvalue.
// It returns -1 when a sorts before b, +1 when after, 0 on equal eigenvalues.
// Intended for slices.SortStableFunc so equal eigenvalues keep production order.
func CompareEigenpairs(a, b Eigenpair) int {
	switch {
	case a.value > b.value:
		return -1
	case a.value < b.value:
		return 1
	default:
		return 0
	}
}
