// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK indicates k < 1 or k > N.
	ErrInvalidK = errors.New("eigen: k must be in [1, N]")

	// ErrNotConverged indicates that the solver exhausted its restart budget
	// before every wanted eigenpair met the residual tolerance.
	ErrNotConverged = errors.New("eigen: eigensolver did not converge")

	// ErrNilOperator indicates a nil operator.
	ErrNilOperator = errors.New("eigen: nil operator")
)

// NotConvergedError reports a non-converged solve together with the partial
// state reached. It unwraps to ErrNotConverged.
type NotConvergedError struct {
	// Converged is how many of the Wanted Ritz pairs met the tolerance.
	Converged int
	// Wanted is the requested number of eigenpairs.
	Wanted int
	// Restarts is the number of restarts performed.
	Restarts int
	// Partial holds the current Ritz approximations; not a valid result.
	Partial *Result
}

// Error implements error.
func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("eigen: %d of %d eigenpairs converged after %d restarts", e.Converged, e.Wanted, e.Restarts)
}

// Unwrap exposes ErrNotConverged to errors.Is.
func (e *NotConvergedError) Unwrap() error { return ErrNotConverged }
