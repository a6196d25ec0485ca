// SPDX-License-Identifier: MIT

package eigen

import "math"

// Defaults for the Lanczos solver.
const (
	// DefaultMaxRestarts bounds the number of restart cycles.
	DefaultMaxRestarts = 300
	// DefaultTolerance is the residual tolerance relative to the spectral scale.
	DefaultTolerance = 1e-10
	// minSubspace is the smallest default basis size.
	minSubspace = 20
	// subspacePerPair is the default basis size per wanted eigenpair.
	subspacePerPair = 3
)

// Option configures a Lanczos solver.
type Option func(*Lanczos)

// WithSubspaceSize sets the maximum basis size m. It is raised to k+b+1 when
// smaller and capped at N. Panics if m < 2.
func WithSubspaceSize(m int) Option {
	if m < 2 {
		panic("eigen: WithSubspaceSize(m<2)")
	}
	return func(s *Lanczos) { s.subspace = m }
}

// WithBlockSize sets the number of start vectors b (default k). Panics if b < 1.
func WithBlockSize(b int) Option {
	if b < 1 {
		panic("eigen: WithBlockSize(b<1)")
	}
	return func(s *Lanczos) { s.block = b }
}

// WithMaxRestarts sets the restart budget. Zero means a single cycle. Panics if r < 0.
func WithMaxRestarts(r int) Option {
	if r < 0 {
		panic("eigen: WithMaxRestarts(r<0)")
	}
	return func(s *Lanczos) { s.maxRestarts = r }
}

// WithTolerance sets the relative residual tolerance. Panics unless 0 < tol < 1.
func WithTolerance(tol float64) Option {
	if !(tol > 0 && tol < 1) {
		panic("eigen: WithTolerance(tol not in (0,1))")
	}
	return func(s *Lanczos) { s.tol = tol }
}

// WithSeed sets the seed of the start block.
func WithSeed(seed int64) Option {
	return func(s *Lanczos) { s.seed = seed }
}

// WithBound supplies an upper bound on ‖A‖₂ (for a Laplacian, see
// laplacian.SpectralBound). Residuals are measured relative to it. Zero means
// "estimate from the Ritz values". Panics on negative, NaN or Inf.
func WithBound(bound float64) Option {
	if !(bound >= 0) || math.IsInf(bound, 0) {
		panic("eigen: WithBound(bound<0|NaN|Inf)")
	}
	return func(s *Lanczos) { s.bound = bound }
}
