// SPDX-License-Identifier: MIT
// Package matrix - public API facades and constructors.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//   - Randomness is always caller-supplied (NewRandom takes an explicit source).
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

import (
	"fmt"
	"math/rand"
)

const (
	opNewFromRows  = "NewFromRows"
	opNewRandom    = "NewRandom"
	opIdentityLike = "IdentityLike"
	opZerosLike    = "ZerosLike"
	opSymmetrize   = "Symmetrize"
)

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element for inverses and as the Jacobi basis seed.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// NewFromRows builds a Dense from a rectangular slice of rows (copied).
//
// Errors:
//   - ErrInvalidDimensions for zero rows or an empty first row.
//   - ErrColumnMismatch when a row length differs from the first row.
//   - ErrNaNInf for non-finite values while the numeric policy is on.
//
// Options:
//   - WithNoValidateNaNInf keeps ±Inf/NaN and disables the guard on the result.
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opNewFromRows, fmt.Errorf("row %d: %w", i, ErrColumnMismatch))
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opNewFromRows, err)
			}
		}
	}

	return m, nil
}

// NewRandom returns a rows×cols matrix with entries lo + (hi-lo)·U,
// U drawn from rng.Float64() in row-major order.
//
// Errors:
//   - ErrInvalidDimensions, ErrNilSource (rng == nil).
//
// Determinism:
//   - Same seed, same shape, same bounds ⇒ same matrix.
func NewRandom(rows, cols int, lo, hi float64, rng *rand.Rand) (*Dense, error) {
	if rng == nil {
		return nil, matrixErrorf(opNewRandom, ErrNilSource)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewRandom, err)
	}
	span := hi - lo
	for k := range m.data {
		m.data[k] = lo + span*rng.Float64()
	}

	return m, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
//
// AI-Hints: Useful for staging buffers or accumulating into fresh containers.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Difference is an alias for Sub: element-wise a − b.
func Difference(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// ElementProduct is an alias for Hadamard: element-wise product a ⊙ b.
func ElementProduct(a, b Matrix) (*Dense, error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
//
// AI-Hints: Good for small helpers and chaining.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// InverseOf is an alias for Inverse: returns A⁻¹ by full-pivot Gauss–Jordan.
// Complexity: O(n^3).
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// CholeskyDecompose is an alias for Cholesky: returns the lower factor L of A = L·Lᵀ.
func CholeskyDecompose(m Matrix) (*Dense, error) { return Cholesky(m) }

// Characteristics is an alias for Eigen: sorted eigenpairs of a symmetric matrix.
// Complexity: O(sweeps · n^3).
func Characteristics(m Matrix, opts ...Option) ([]Eigenpair, error) { return Eigen(m, opts...) }

// ---------- Convenience facades (compositions only; no loop duplication) ----------

// Symmetrize returns (m + mᵀ)/2. Deterministic composition: Transpose → Add → Scale.
// The result is exactly symmetric, so it always passes the strict check used by
// Cholesky and Eigen.
//
// AI-Hints: Use to repair asymmetry drift (e.g. after Bᵀ·A·B in floating point)
// before a symmetric factorization.
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	sum.ScaleInPlace(0.5)

	return sum, nil
}
