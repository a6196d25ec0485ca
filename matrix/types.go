// SPDX-License-Identifier: MIT

// Package matrix: shared interfaces and small value types.
package matrix

// Matrix is a read-only two-dimensional view over float64 values.
//
// At returns ErrOutOfRange (wrapped) for invalid coordinates and never panics.
// Implementations must be safe for concurrent readers.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At returns the element at (i, j).
	At(i, j int) (float64, error)
}

// Operator is a square linear map x ↦ M·x.
//
// MulVec writes M·x into dst. Both slices must have length Dim(); callers
// that cannot guarantee it should go through MatVec, which validates lengths.
// dst and x must not alias.
type Operator interface {
	// Dim returns N for an N×N operator.
	Dim() int

	// MulVec computes dst = M·x.
	MulVec(dst, x []float64)
}

// Triplet is one coordinate-format entry (Row, Col, Value) used to assemble
// a Sparse matrix. Duplicate coordinates are summed by NewSparse.
type Triplet struct {
	Row   int
	Col   int
	Value float64
}

// MatVec returns y = m·x after validating that len(x) == m.Dim().
// Complexity: O(cost of m.MulVec) + O(N) allocation.
func MatVec(m Operator, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf("MatVec", ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.Dim()); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	y := make([]float64, m.Dim())
	m.MulVec(y, x)

	return y, nil
}
