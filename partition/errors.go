// SPDX-License-Identifier: MIT

package partition

import "errors"

var (
	// ErrLengthMismatch indicates len(z) differs from the node count.
	ErrLengthMismatch = errors.New("partition: label vector length mismatch")

	// ErrLabelOutOfRange indicates a label outside [0, k).
	ErrLabelOutOfRange = errors.New("partition: label out of range")
)
