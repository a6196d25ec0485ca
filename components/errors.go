// SPDX-License-Identifier: MIT

package components

import "errors"

var (
	// ErrStartOutOfRange is returned when the start node is not in [0, N).
	ErrStartOutOfRange = errors.New("components: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("components: invalid option supplied")
)
