// SPDX-License-Identifier: MIT

package spectral

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/kmeans"
)

// DefaultSymmetryTolerance is the absolute tolerance for A[i,j] = A[j,i].
const DefaultSymmetryTolerance = 1e-10

// Option customizes Embed and Cluster.
type Option func(*config)

type config struct {
	normalized bool
	seed       int64
	solver     eigen.Solver
	lanczos    []eigen.Option
	kmeans     kmeans.Config
	symTol     float64
	logger     *slog.Logger
	metrics    *Metrics
}

func newConfig(opts ...Option) config {
	cfg := config{
		kmeans: kmeans.DefaultConfig(),
		symTol: DefaultSymmetryTolerance,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithNormalized selects the symmetric normalized Laplacian (true) or D − A
// (false, the default).
func WithNormalized(normalized bool) Option {
	return func(c *config) { c.normalized = normalized }
}

// WithSeed fixes the eigensolver start block and the k-means restarts.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithSolver replaces the default Lanczos solver. The solver's own seed
// applies instead of WithSeed. Panics on nil.
func WithSolver(s eigen.Solver) Option {
	if s == nil {
		panic("spectral: WithSolver(nil)")
	}
	return func(c *config) { c.solver = s }
}

// WithLanczos tunes the default Lanczos solver. The options apply after the
// seed and spectral bound that Embed sets, so they may override either.
// Ignored when WithSolver is given.
func WithLanczos(opts ...eigen.Option) Option {
	return func(c *config) { c.lanczos = append(c.lanczos, opts...) }
}

// WithKMeans sets the k-means iteration cap, restarts and workers. The Seed
// field is ignored; WithSeed governs it.
func WithKMeans(cfg kmeans.Config) Option {
	return func(c *config) { c.kmeans = cfg }
}

// WithSymmetryTolerance sets the absolute tolerance of the symmetry check.
// Panics on negative, NaN or Inf.
func WithSymmetryTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic("spectral: WithSymmetryTolerance(tol<0|NaN|Inf)")
	}
	return func(c *config) { c.symTol = tol }
}

// WithLogger attaches a logger for per-stage Debug records and degenerate
// cluster Warn records. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("spectral: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics records stage durations and solver counters into m. nil disables.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}
