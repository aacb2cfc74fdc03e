// Package matrix offers a dense real-matrix type and the classic direct
// kernels that run on it.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe accessors (At/Set/AddAt
//     return errors, never panic), row/column helpers and in-place updates.
//   - Arithmetic: Add, Sub, Hadamard, HadamardVec, Scale, Divide, Mul,
//     MatVec, VecMat, Transpose, Trace, IsSymmetric, AllClose.
//   - Determinant by forward elimination (no pivoting).
//   - Invert / Inverse by Gauss–Jordan elimination with full pivoting.
//   - Cholesky factorization of symmetric positive-definite matrices.
//   - Eigen: symmetric eigen-decomposition by cyclic Jacobi rotations,
//     returning eigenpairs sorted by descending eigenvalue.
//   - Read/WriteTo/Load/Save for a whitespace text format, and
//     ToMat/FromMat for interop with gonum.org/v1/gonum/mat.
//
// Every kernel accepts the Matrix interface, takes a flat-slice fast path
// for *Dense and works on a private copy. Only Invert and the explicit
// in-place methods mutate their receiver.
//
// Errors are package sentinels (ErrNonSquare, ErrNotSymmetric, ErrSingular,
// ...) wrapped with the failing operation; match them with errors.Is.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})
//	l, _ := matrix.Cholesky(a) // [[2 0 0] [6 1 0] [-8 5 3]]
//	pairs, _ := matrix.Eigen(a, matrix.WithMaxSweeps(20))
//	_ = l
//	_ = pairs[0].Eigenvalue() // largest eigenvalue
//
// Matrices are best for small to medium dense problems where O(n²) memory
// and O(n³) direct methods are acceptable.
package matrix
