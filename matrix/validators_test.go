// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// checkErr asserts err matches want (nil means success).
func checkErr(t *testing.T, err, want error) {
	t.Helper()
	if want == nil {
		require.NoError(t, err)

		return
	}
	require.Error(t, err)
	require.Truef(t, errors.Is(err, want), "expected errors.Is(%v, %v)", err, want)
}

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()
	var typedNil *matrix.Dense
	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, MustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"second typed nil", MustDense(t, 2, 2), typedNil, matrix.ErrNilMatrix},
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			checkErr(t, matrix.ValidateBinarySameShape(tc.a, tc.b), tc.wantErr)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			checkErr(t, matrix.ValidateSquareNonNil(tc.m), tc.want)
		})
	}
	checkErr(t, matrix.ValidateSquare(MustDense(t, 3, 1)), matrix.ErrNotSquare)
}

// TestValidateSymmetric checks the order nil → square → symmetry on both paths.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()
	sym := MustFromRows(t, [][]float64{{1, 2, 3}, {2, 5, 6}, {3, 6, 9}})
	asym := MustFromRows(t, [][]float64{{1, 2, 3}, {2, 5, 6}, {3, 6.5, 9}})
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"nonSquare", MustDense(t, 2, 3), matrix.ErrNonSquare},
		{"symmetricDense", sym, nil},
		{"symmetricFallback", hide{sym}, nil},
		{"asymmetricDense", asym, matrix.ErrNotSymmetric},
		{"asymmetricFallback", hide{asym}, matrix.ErrNotSymmetric},
		{"single", MustFromRows(t, [][]float64{{-4}}), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			checkErr(t, matrix.ValidateSymmetric(tc.m), tc.want)
		})
	}
}

// TestValidateVectorsAndMul covers vector-length and product compatibility checks.
func TestValidateVectorsAndMul(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3)
	checkErr(t, matrix.ValidateColVecLen(m, make([]float64, 3)), nil)
	checkErr(t, matrix.ValidateColVecLen(m, make([]float64, 2)), matrix.ErrColumnMismatch)
	checkErr(t, matrix.ValidateRowVecLen(m, make([]float64, 2)), nil)
	checkErr(t, matrix.ValidateRowVecLen(m, make([]float64, 3)), matrix.ErrRowMismatch)

	checkErr(t, matrix.ValidateMulCompatible(m, MustDense(t, 3, 4)), nil)
	checkErr(t, matrix.ValidateMulCompatible(m, MustDense(t, 2, 4)), matrix.ErrRowColumnMismatch)
	checkErr(t, matrix.ValidateMulCompatible(nil, m), matrix.ErrNilMatrix)
	checkErr(t, matrix.ValidateMulCompatible(m, nil), matrix.ErrNilMatrix)
	checkErr(t, matrix.ValidateNotNil(m), nil)
}
