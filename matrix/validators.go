// SPDX-License-Identifier: MIT

// Structural checks run before Laplacian construction and eigensolves.
// Each failure is a sentinel wrapped with the validator name. *Sparse inputs
// are checked in O(nnz); other Matrix values are scanned through At.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil pointer stored in the interface is treated as nil as well.
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Sparse:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows() == Cols().
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| <= tol for all i, j.
//
// Inputs: square Matrix m, tolerance tol (negative values are taken by magnitude).
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on a bad
// tolerance and ErrAsymmetry on violation.
// Complexity: O(nnz log maxdeg) for *Sparse, O(n^2) otherwise.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	if s, ok := m.(*Sparse); ok {
		if !s.IsSymmetric(tol) {
			return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
		}
		return nil
	}

	n := m.Rows()
	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateNonNegative ensures every stored entry is >= 0.
// Complexity: O(nnz) for *Sparse, O(r*c) otherwise.
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	switch v := m.(type) {
	case *Sparse:
		for _, x := range v.vals {
			if x < 0 {
				return validatorErrorf("ValidateNonNegative", ErrNegativeEntry)
			}
		}
	case *Dense:
		for _, x := range v.data {
			if x < 0 {
				return validatorErrorf("ValidateNonNegative", ErrNegativeEntry)
			}
		}
	default:
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				if x, _ := m.At(i, j); x < 0 {
					return validatorErrorf("ValidateNonNegative", ErrNegativeEntry)
				}
			}
		}
	}

	return nil
}
