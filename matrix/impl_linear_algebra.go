// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction and product, matrix
// multiplication, matrix-vector products, transpose, scalar scaling, trace
// and the exact symmetry test. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical arithmetic kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Factorizations and solvers live in dedicated kernel files
//     (impl_elimination.go, impl_cholesky.go, impl_eigen.go).
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"errors"
	"fmt"
)

// ZeroSum is the initial value for dot-product style accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opDivide      = "Divide"
	opHadamard    = "Hadamard"
	opHadamardVec = "HadamardVec"
	opMatVec      = "MatVec"
	opVecMat      = "VecMat"
	opTrace       = "Trace"
	opIsSymmetric = "IsSymmetric"
	opDeterminant = "Determinant"
	opInvert      = "Invert"
	opInverse     = "Inverse"
	opCholesky    = "Cholesky"
	opEigen       = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
//
// Behavior highlights:
//   - Preserves the underlying sentinel/type for errors.Is/errors.As.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical op* constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf labels a failed interface read with its coordinates.
func atErrorf(i, j int, err error) error {
	return fmt.Errorf("At(%d,%d): %w", i, j, err)
}

// combine computes element-wise out = f(a[i,j], b[i,j]) for identically shaped inputs.
// Internal helper for Add/Sub/Hadamard to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func combine(a, b Matrix, opTag string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, atErrorf(i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, atErrorf(i, j, err))
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Inputs:
//   - A: left matrix operand (any Matrix).
//   - B: right matrix operand (any Matrix) with the same shape as A.
//
// Returns:
//   - *Dense: a new matrix with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// Notes:
//   - Inputs are never mutated; use (*Dense).AddInPlace to accumulate.
func Add(a, b Matrix) (*Dense, error) {
	return combine(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	return combine(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	return combine(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// HadamardVec multiplies a single-row or single-column matrix by v element-wise.
//
// Behavior highlights:
//   - 1×c with len(v)==c: C[0,j] = M[0,j]*v[j].
//   - r×1 with len(v)==r: C[i,0] = M[i,0]*v[i].
//   - A 1×1 matrix with a length-1 vector matches both rules and yields the same result.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch for any other shape/length combination.
//
// Complexity:
//   - Time O(len(v)), Space O(len(v)).
func HadamardVec(m Matrix, v []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opHadamardVec, err)
	}
	var (
		res *Dense
		err error
	)
	switch {
	case m.Rows() == 1 && m.Cols() == len(v):
		res, err = ewScaleCols(m, v)
	case m.Cols() == 1 && m.Rows() == len(v):
		res, err = ewScaleRows(m, v)
	default:
		return nil, matrixErrorf(opHadamardVec, ErrDimensionMismatch)
	}
	if err != nil {
		return nil, matrixErrorf(opHadamardVec, err)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new matrix C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrRowColumnMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - Skipping zeros means 0*Inf never contributes NaN; keep that in mind for
//     inputs built with WithNoValidateNaNInf.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, atErrorf(i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, atErrorf(k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MatVec computes y = M·x (right multiplication by a column vector).
//
// Errors:
//   - ErrNilMatrix; ErrColumnMismatch when len(x) != Cols().
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateColVecLen(m, x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var sum float64
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = ZeroSum
			for j = 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, atErrorf(i, j, err))
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}

// VecMat computes yᵀ = xᵀ·M (left multiplication by a row vector).
//
// Errors:
//   - ErrNilMatrix; ErrRowMismatch when len(x) != Rows().
//
// Complexity:
//   - Time O(r*c), Space O(c). Accumulation order is i→j (row-major friendly).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateRowVecLen(m, x); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var xi float64
		for i = 0; i < rows; i++ {
			base = i * cols
			xi = x[i]
			for j = 0; j < cols; j++ {
				y[j] += xi * d.data[base+j]
			}
		}

		return y, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opVecMat, atErrorf(i, j, err))
			}
			y[j] += x[i] * v
		}
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - If you only need xᵀ·A, prefer VecMat instead of forming Aᵀ.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, atErrorf(i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix with every entry multiplied by alpha.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	res, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res.ScaleInPlace(alpha)

	return res, nil
}

// Divide returns a new matrix with every entry divided by alpha.
// Division by zero follows IEEE-754.
func Divide(m Matrix, alpha float64) (*Dense, error) {
	res, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	res.DivideInPlace(alpha)

	return res, nil
}

// Trace returns Σ_i M[i,i].
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n := m.Rows()
	sum := ZeroSum
	var i int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, atErrorf(i, i, err))
		}
		sum += v
	}

	return sum, nil
}

// IsSymmetric reports whether M[i,j] == M[j,i] for every pair, using
// exact comparison.
// Errors: ErrNilMatrix; ErrNonSquare before any element is compared.
func IsSymmetric(m Matrix) (bool, error) {
	err := ValidateSymmetric(m)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotSymmetric):
		return false, nil
	default:
		return false, matrixErrorf(opIsSymmetric, err)
	}
}
