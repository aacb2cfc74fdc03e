// Package linalg is a small dense linear-algebra toolkit for real matrices.
//
// The work lives in the matrix subpackage:
//
//	matrix/ - Dense type, arithmetic, Determinant, Gauss–Jordan inversion,
//	          Cholesky factorization, Jacobi eigen-decomposition, text I/O
//	          and gonum interop
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
//	det, _ := matrix.Determinant(a) // 5
//	inv, _ := matrix.Inverse(a)     // [[0.6 -0.2] [-0.2 0.4]]
//	pairs, _ := matrix.Eigen(a)     // λ₁ ≥ λ₂ > 0
//
// All kernels are pure Go, deterministic and return sentinel errors that
// callers match with errors.Is.
package linalg
