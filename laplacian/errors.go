// SPDX-License-Identifier: MIT

package laplacian

import "errors"

// ErrUnknownKind indicates a Kind value other than Unnormalized or Normalized.
var ErrUnknownKind = errors.New("laplacian: unknown kind")
