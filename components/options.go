// SPDX-License-Identifier: MIT

package components

import (
	"context"
	"fmt"
)

// Option configures BFS. An invalid option is recorded and surfaced as
// ErrOptionViolation when BFS runs.
type Option func(*options)

type options struct {
	ctx       context.Context
	onVisit   func(node, depth int) error
	maxDepth  int
	minWeight float64
	err       error
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		onVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a context checked once per dequeued node.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run when a node is visited; a non-nil
// error stops the walk and is returned wrapped.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth stops expanding past depth d. d == 0 means no limit; d < 0 is
// an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithMinWeight ignores edges lighter than w. Negative w is an ErrOptionViolation.
func WithMinWeight(w float64) Option {
	return func(o *options) {
		if !(w >= 0) {
			o.err = fmt.Errorf("%w: MinWeight must be >= 0 (%v)", ErrOptionViolation, w)
			return
		}
		o.minWeight = w
	}
}
