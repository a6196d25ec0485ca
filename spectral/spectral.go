// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/spectral/components"
	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/kmeans"
	"github.com/katalvlaran/spectral/laplacian"
	"github.com/katalvlaran/spectral/matrix"
)

const (
	opEmbed   = "Embed"
	opCluster = "Cluster"
	minK      = 2
)

// Embedding is the spectral embedding of a graph.
type Embedding struct {
	// Vectors is N×k; column j is the eigenvector of Values[j], row i the
	// coordinate of node i.
	Vectors *matrix.Dense
	// Values are the k smallest Laplacian eigenvalues, ascending.
	Values []float64
	// Kind is the Laplacian variant used.
	Kind laplacian.Kind
	// Components is the number of connected components of the graph, which
	// is the multiplicity of eigenvalue 0.
	Components int
	// Restarts and MatVecs are the eigensolver's work counters.
	Restarts int
	MatVecs  int
}

// Result is the outcome of Cluster.
type Result struct {
	// Labels[i] ∈ [0, k) is the cluster of node i.
	Labels []int
	// Sizes[j] is the member count of cluster j (zero for degenerate clusters).
	Sizes []int
	// Embedding is the raw spectral embedding.
	Embedding *Embedding
	// Normalized holds the unit-length rows fed to k-means.
	Normalized *matrix.Dense
	// Inertia is the k-means objective on the normalized rows.
	Inertia float64
	// Warnings lists clusters that received no members.
	Warnings []DegenerateClusterWarning
}

// Eigenvalues is a shorthand for r.Embedding.Values.
func (r *Result) Eigenvalues() []float64 { return r.Embedding.Values }

// Embed returns the N×k matrix of eigenvectors for the k smallest eigenvalues
// of the Laplacian of a.
//
// Implementation:
//   - Stage 1 (Validate): nil, symmetry, 2 ≤ k ≤ N, non-negative weights.
//   - Stage 2 (Prepare): L = laplacian.Build(a, kind).
//   - Stage 3 (Execute): k smallest eigenpairs of L; the default solver is
//     Lanczos seeded by WithSeed with L's Gershgorin bound as residual scale.
//
// For the normalized Laplacian the first column spans sqrt(D) (eigenvalue 0)
// and is kept.
func Embed(a *matrix.Sparse, k int, opts ...Option) (*Embedding, error) {
	cfg := newConfig(opts...)
	emb, err := embed(opEmbed, a, k, cfg)
	cfg.metrics.observeRun(opEmbed, err)

	return emb, err
}

// Cluster partitions the nodes of a into k clusters.
//
// Implementation:
//   - Stage 1: Embed (all validation happens there).
//   - Stage 2: scale every embedding row to unit length (zero rows stay zero).
//   - Stage 3: seeded k-means with k centroids; empty clusters become warnings.
func Cluster(a *matrix.Sparse, k int, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	res, err := cluster(a, k, cfg)
	cfg.metrics.observeRun(opCluster, err)

	return res, err
}

func cluster(a *matrix.Sparse, k int, cfg config) (*Result, error) {
	emb, err := embed(opCluster, a, k, cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, _, err := matrix.NormalizeRowsL2(emb.Vectors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}
	cfg.metrics.observeStage(StageNormalize, start)

	start = time.Now()
	kcfg := cfg.kmeans
	kcfg.Seed = cfg.seed
	km, err := kmeans.Fit(rows, k, kcfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}
	cfg.metrics.observeStage(StageKMeans, start)
	cfg.logger.Debug("kmeans done",
		"inertia", km.Inertia, "iterations", km.Iterations, "restart", km.Restart, "sizes", km.Sizes)

	res := &Result{
		Labels:     km.Labels,
		Sizes:      km.Sizes,
		Embedding:  emb,
		Normalized: rows,
		Inertia:    km.Inertia,
	}
	for _, j := range km.Empty {
		w := DegenerateClusterWarning{Cluster: j}
		res.Warnings = append(res.Warnings, w)
		cfg.logger.Warn("degenerate cluster", "cluster", j, "k", k)
	}
	cfg.metrics.observeDegenerate(len(res.Warnings))

	return res, nil
}

func embed(op string, a *matrix.Sparse, k int, cfg config) (*Embedding, error) {
	if err := validate(op, a, k, cfg.symTol); err != nil {
		return nil, err
	}

	kind := laplacian.KindOf(cfg.normalized)
	start := time.Now()
	l, err := laplacian.Build(a, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	_, comps, err := components.Label(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cfg.metrics.observeStage(StageLaplacian, start)
	cfg.logger.Debug("laplacian built", "kind", kind.String(), "n", l.Dim(), "nnz", l.NNZ(), "components", comps)

	solver := cfg.solver
	if solver == nil {
		lopts := []eigen.Option{eigen.WithSeed(cfg.seed), eigen.WithBound(laplacian.SpectralBound(l))}
		solver = eigen.NewLanczos(append(lopts, cfg.lanczos...)...)
	}

	start = time.Now()
	res, err := solver.Smallest(l, k)
	cfg.metrics.observeStage(StageEigen, start)
	if err != nil {
		var nce *eigen.NotConvergedError
		if errors.As(err, &nce) {
			cfg.metrics.observeNonConvergence()
			cfg.metrics.observeSolver(nce.Partial)
			cfg.logger.Debug("eigensolver did not converge",
				"k", k, "converged", nce.Converged, "restarts", nce.Restarts)
			return nil, fmt.Errorf("%s: %w: %w", op, ErrSolverNonConvergence, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cfg.metrics.observeSolver(res)
	cfg.logger.Debug("eigensolver converged",
		"k", k, "restarts", res.Restarts, "matvecs", res.MatVecs, "values", res.Values)

	return &Embedding{
		Vectors:    res.Vectors,
		Values:     res.Values,
		Kind:       kind,
		Components: comps,
		Restarts:   res.Restarts,
		MatVecs:    res.MatVecs,
	}, nil
}

// validate enforces the preconditions in their documented order.
func validate(op string, a *matrix.Sparse, k int, symTol float64) error {
	if a == nil {
		return fmt.Errorf("%s: %w", op, ErrNilGraph)
	}
	if err := matrix.ValidateSymmetric(a, symTol); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrAsymmetricGraph, err)
	}
	n := a.Dim()
	if k < minK {
		return fmt.Errorf("%s: k=%d: at least two clusters required: %w", op, k, ErrInvalidClusterCount)
	}
	if k > n {
		return fmt.Errorf("%s: k=%d, N=%d: cannot exceed node count: %w", op, k, n, ErrInvalidClusterCount)
	}
	if err := matrix.ValidateNonNegative(a); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrNegativeWeight, err)
	}

	return nil
}
