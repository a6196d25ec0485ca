// SPDX-License-Identifier: MIT

// Package spectral clusters the nodes of an undirected weighted graph.
//
// Pipeline:
//
//	A ─► L = laplacian.Build(A) ─► k smallest eigenpairs of L ─► E (N×k)
//	  ─► rows of E scaled to unit length ─► k-means ─► labels z
//
// Embed stops after the eigenvectors; Cluster runs the whole pipeline.
//
// Preconditions, checked before any numerical work and in this order:
//
//   - A non-nil (ErrNilGraph).
//   - A = Aᵀ within the symmetry tolerance (ErrAsymmetricGraph).
//   - 2 ≤ k ≤ N (ErrInvalidClusterCount, "at least two clusters required" or
//     "cannot exceed node count").
//   - No negative weights (ErrNegativeWeight).
//
// Failures of the eigensolver to reach its tolerance are reported as
// ErrSolverNonConvergence; errors.As with *eigen.NotConvergedError exposes the
// partial eigenpairs for diagnostics. No retry is attempted.
//
// Row normalisation is always applied before k-means, for both Laplacian
// variants. Rows of zero norm stay zero.
//
// A cluster that ends up without members is not an error: it is reported in
// Result.Warnings as a DegenerateClusterWarning and its size stays zero.
//
// Randomness comes only from the seed (WithSeed): it fixes the eigensolver's
// start block and every k-means restart. Label permutations may differ across
// solver implementations; compare partitions with partition.Equivalent.
//
// Observability: WithLogger attaches a *slog.Logger (silent by default);
// WithMetrics attaches Prometheus collectors created by NewMetrics.
package spectral
