// SPDX-License-Identifier: MIT

// Package laplacian builds graph Laplacians from symmetric sparse adjacency
// matrices.
//
// Two variants are provided:
//
//	Unnormalized:  L = D − A
//	Normalized:    L = I − D^(−1/2) · A · D^(−1/2)
//
// where D = diag(d) and d[i] = Σ_j A[i,j] (a non-zero diagonal of A takes
// part in the degree like any other entry).
//
// Zero degrees:
//
//   - In the normalized variant 1/sqrt(0) is taken as 0, so the row and column
//     of an isolated node in D^(−1/2)·A·D^(−1/2) are zero and L keeps the
//     identity row there. No NaN or Inf is ever produced.
//
// Symmetry:
//
//   - Build does not check A = Aᵀ; callers that need the guarantee (the
//     spectral embedder) validate before calling. The result is symmetric
//     exactly when A is.
//
// Both variants are positive semi-definite for symmetric non-negative A.
// SpectralBound returns a Gershgorin upper bound on λmax that eigensolvers
// use to turn "smallest of L" into "largest of σI − L".
package laplacian
