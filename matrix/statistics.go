// SPDX-License-Identifier: MIT

// Row and column reductions over embeddings and feature tables.

package matrix

import "github.com/viterin/vek"

const (
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opColumnSums      = "ColumnSums"
)

// NormalizeRowsL2 returns a copy of X whose rows have unit Euclidean norm,
// plus the original row norms.
//
// Behavior highlights:
//   - Rows with zero norm are left as the zero vector (no division).
//   - X itself is not modified.
//
// Errors:
//   - ErrNilMatrix when X is nil.
//
// Complexity: Time O(r*c), Space O(r*c).
func NormalizeRowsL2(X *Dense) (*Dense, []float64, error) {
	if X == nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, ErrNilMatrix)
	}

	Y := X.Clone()
	norms := make([]float64, Y.r)
	var row []float64
	for i := 0; i < Y.r; i++ {
		row = Y.data[i*Y.c : (i+1)*Y.c]
		norms[i] = vek.Norm(row)
		if norms[i] > 0 {
			vek.MulNumber_Inplace(row, 1/norms[i])
		}
	}

	return Y, norms, nil
}

// ColumnSums returns Σ_{i∈rows} X[i,j] for every column j.
// A nil rows slice means "all rows". Out-of-range row indices yield ErrOutOfRange.
// Complexity: O(|rows|*c).
func ColumnSums(X *Dense, rows []int) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opColumnSums, ErrNilMatrix)
	}

	sums := make([]float64, X.c)
	if rows == nil {
		for i := 0; i < X.r; i++ {
			vek.Add_Inplace(sums, X.data[i*X.c:(i+1)*X.c])
		}
		return sums, nil
	}
	for _, i := range rows {
		if i < 0 || i >= X.r {
			return nil, matrixErrorf(opColumnSums, ErrOutOfRange)
		}
		vek.Add_Inplace(sums, X.data[i*X.c:(i+1)*X.c])
	}

	return sums, nil
}
