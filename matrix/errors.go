// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and kernels return these sentinels (optionally wrapped with
// "%w"); tests and callers match them via errors.Is. User-triggered conditions
// never panic.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> NaN/Inf -> structural violations (asymmetry, negativity).

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested dimensions are not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. a vector
	// whose length differs from the matrix dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that A[i,j] and A[j,i] differ by more than the
	// configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeEntry signals a negative value where a non-negative matrix
	// (adjacency weights, feature counts) is required.
	ErrNegativeEntry = errors.New("matrix: negative entry")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
