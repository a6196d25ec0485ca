// SPDX-License-Identifier: MIT

// Package matrix provides the storage layer of the spectral pipeline.
//
// The package offers two concrete representations:
//
//   - Sparse: an immutable square CSR (compressed sparse row) matrix used for
//     adjacency matrices and graph Laplacians. Construction goes through
//     NewSparse, which sums duplicate coordinates and drops explicit zeros.
//   - Dense: a row-major rectangular matrix used for spectral embeddings,
//     eigenvector blocks and side feature matrices.
//
// Both satisfy Matrix (safe element access) and Operator (y = M·x), so that
// iterative solvers never need to know how a matrix is stored.
//
// Numeric policy:
//
//   - NaN and ±Inf are rejected at ingestion (ErrNaNInf).
//   - Symmetry is checked within an explicit tolerance (ValidateSymmetric).
//   - Row normalisation leaves zero rows untouched instead of dividing by zero.
//
// Determinism:
//
//   - Every loop runs in fixed i→j order. Sparse.MulVec may split rows across
//     goroutines for large matrices, but each output entry is computed by a
//     single goroutine in the same order as the serial path, so results are
//     bit-identical with or without parallelism.
//
// Errors are package-level sentinels (errors.go) and must be matched with
// errors.Is.
package matrix
