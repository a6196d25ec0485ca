// SPDX-License-Identifier: MIT

package cut

import "errors"

var (
	// ErrLengthMismatch indicates len(z) differs from the node count of A.
	ErrLengthMismatch = errors.New("cut: label vector length mismatch")

	// ErrNegativeLabel indicates a negative cluster label.
	ErrNegativeLabel = errors.New("cut: negative label")
)
