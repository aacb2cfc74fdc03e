// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped with operation context
// via fmt.Errorf("<op>: %w", ErrX); callers match them with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> square -> symmetry -> numeric (PD/singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/AddAt) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a requested sub-block is invalid
	// (e.g., Partial with rowStart > rowEnd).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch signals element-wise operands with differing
	// row or column counts (Add, Sub, Hadamard and their in-place forms).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRowMismatch signals that a vector's length differs from Rows()
	// in a left multiplication vᵀ·M.
	ErrRowMismatch = errors.New("matrix: vector length does not match row count")

	// ErrColumnMismatch signals that a vector's length differs from Cols()
	// in a right multiplication M·v or a row update.
	ErrColumnMismatch = errors.New("matrix: vector length does not match column count")

	// ErrRowColumnMismatch signals A(m×k)·B(k2×n) with k != k2.
	ErrRowColumnMismatch = errors.New("matrix: inner dimensions do not match")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotSymmetric signals that Cholesky or Eigen received a matrix with
	// A[i,j] != A[j,i] for some pair (strict comparison, no tolerance).
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal residual is ≤ 0.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrSingular is returned when full-pivot inversion finds no usable pivot,
	// or the chosen pivot is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, AddAt, Apply, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrMalformedInput is returned by Read/Load when the text stream does not
	// follow the "rows cols v11 v12 ..." layout.
	ErrMalformedInput = errors.New("matrix: malformed matrix input")

	// ErrNilSource is returned by NewRandom when no random source is supplied.
	ErrNilSource = errors.New("matrix: nil random source")
)

// ErrDeterminantZero names the same condition as ErrSingular.
// Kept so errors.Is(err, ErrDeterminantZero) reads naturally at call sites
// that think in terms of determinants.
var ErrDeterminantZero = ErrSingular

// ErrNotSquare is an alias of ErrNonSquare.
var ErrNotSquare = ErrNonSquare
