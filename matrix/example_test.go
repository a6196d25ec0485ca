// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
)

// ExampleNewSparse assembles a weighted path 0-1-2 and multiplies it by a vector.
func ExampleNewSparse() {
	a, err := matrix.NewSparse(3, []matrix.Triplet{
		{Row: 0, Col: 1, Value: 2}, {Row: 1, Col: 0, Value: 2},
		{Row: 1, Col: 2, Value: 1}, {Row: 2, Col: 1, Value: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	y, _ := matrix.MatVec(a, []float64{1, 1, 1})
	fmt.Println("nnz:", a.NNZ())
	fmt.Println("degrees:", a.RowSums())
	fmt.Println("A·1:", y)
	// Output:
	// nnz: 4
	// degrees: [2 3 1]
	// A·1: [2 3 1]
}
