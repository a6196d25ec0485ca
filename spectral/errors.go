// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph indicates a nil adjacency matrix.
	ErrNilGraph = errors.New("spectral: nil graph")

	// ErrAsymmetricGraph indicates A ≠ Aᵀ beyond the symmetry tolerance.
	ErrAsymmetricGraph = errors.New("spectral: adjacency matrix is not symmetric")

	// ErrInvalidClusterCount indicates k < 2 or k > N.
	ErrInvalidClusterCount = errors.New("spectral: invalid cluster count")

	// ErrNegativeWeight indicates a negative adjacency entry.
	ErrNegativeWeight = errors.New("spectral: negative edge weight")

	// ErrSolverNonConvergence indicates the eigensolver exhausted its budget.
	// The wrapped *eigen.NotConvergedError carries partial eigenpairs that must
	// not be used as results.
	ErrSolverNonConvergence = errors.New("spectral: eigensolver did not converge")
)

// DegenerateClusterWarning reports a cluster that received no members. It is
// delivered through Result.Warnings, never as a returned error.
type DegenerateClusterWarning struct {
	Cluster int
}

// Error implements error so warnings can be logged or joined like errors.
func (w DegenerateClusterWarning) Error() string {
	return fmt.Sprintf("spectral: cluster %d received no members", w.Cluster)
}
