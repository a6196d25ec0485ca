// SPDX-License-Identifier: MIT

package kmeans

import "errors"

var (
	// ErrEmptyInput indicates a nil or empty data matrix.
	ErrEmptyInput = errors.New("kmeans: empty input")

	// ErrInvalidK indicates k < 1 or k greater than the number of points.
	ErrInvalidK = errors.New("kmeans: k must be in [1, rows]")
)
