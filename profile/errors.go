// SPDX-License-Identifier: MIT

package profile

import "errors"

var (
	// ErrInvalidTopK indicates topK < 1.
	ErrInvalidTopK = errors.New("profile: topK must be at least 1")

	// ErrNameCount indicates the category names do not match the feature columns.
	ErrNameCount = errors.New("profile: category name count mismatch")
)
