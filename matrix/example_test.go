// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleCholesky factors a small SPD matrix with integer factors.
func ExampleCholesky() {
	a, _ := matrix.NewFromRows([][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})
	l, err := matrix.Cholesky(a)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Print(l)
	// Output:
	// [2, 0, 0]
	// [6, 1, 0]
	// [-8, 5, 3]
}

// ExampleDense_Invert inverts a permutation in place.
func ExampleDense_Invert() {
	m, _ := matrix.NewFromRows([][]float64{{0, 1}, {1, 0}})
	if err := m.Invert(); err != nil {
		fmt.Println(err)

		return
	}
	fmt.Print(m)

	s, _ := matrix.NewFromRows([][]float64{{0, 1}, {0, 1}})
	fmt.Println(s.Invert())
	// Output:
	// [0, 1]
	// [1, 0]
	// Invert: matrix: singular matrix
}

// ExampleDeterminant shows forward elimination on a 2×2 matrix.
func ExampleDeterminant() {
	m, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
	det, _ := matrix.Determinant(m)
	fmt.Println(det)
	// Output: 5
}

// ExampleEigen keeps the positive part of the spectrum, largest first.
func ExampleEigen() {
	a, _ := matrix.NewFromRows([][]float64{
		{2, 0, -2, 0},
		{0, 2, 0, -2},
		{-2, 0, 2, 0},
		{0, -2, 0, 2},
	})
	pairs, _ := matrix.Eigen(a)
	fmt.Println(len(pairs))
	for _, p := range pairs {
		fmt.Printf("%.4f\n", p.Eigenvalue())
	}

	all, _ := matrix.Eigen(a, matrix.WithAllEigenpairs())
	fmt.Println(len(all))
	// Output:
	// 2
	// 4.0000
	// 4.0000
	// 4
}

// ExampleRead parses the text format and writes it back.
func ExampleRead() {
	m, err := matrix.Read(strings.NewReader("2 2\n1 2.5\n-3 0\n"))
	if err != nil {
		fmt.Println(err)

		return
	}
	_, _ = m.WriteTo(os.Stdout)
	// Output:
	// 1.00000 2.50000
	// -3.00000 0.00000
}
