// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestToMatFromMat_RoundTrip checks values and memory independence.
func TestToMatFromMat_RoundTrip(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	g := m.ToMat()
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	g.Set(0, 0, 99)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0), "ToMat must copy")

	back, err := matrix.FromMat(g)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{99, 2, 3}, {4, 5, 6}}, back)
	g.Set(1, 1, -1)
	require.Equal(t, 5.0, MustAt(t, back, 1, 1), "FromMat must copy")

	// Any mat.Matrix works, including views and transposes.
	tr, err := matrix.FromMat(g.T())
	require.NoError(t, err)
	CompareExact(t, [][]float64{{99, 4}, {2, -1}, {3, 6}}, tr)
}

// TestFromMat_Errors rejects nil and non-finite sources.
func TestFromMat_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.FromMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	g := mat.NewDense(2, 2, []float64{1, 2, math.NaN(), 4})
	_, err = matrix.FromMat(g)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestMul_MatchesGonumProduct cross-checks the product kernel.
func TestMul_MatchesGonumProduct(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 6, 4)
	b := MustDense(t, 4, 5)
	RandomFill(t, a, 21)
	RandomFill(t, b, 22)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	var ref mat.Dense
	ref.Mul(a.ToMat(), b.ToMat())
	want, err := matrix.FromMat(&ref)
	require.NoError(t, err)
	CompareClose(t, got, want, 1e-14, 1e-14)
}
