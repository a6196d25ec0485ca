// SPDX-License-Identifier: MIT

// Package eigen computes the k smallest eigenpairs of a real symmetric
// operator.
//
// Solvers:
//
//   - Lanczos (default): block thick-restart Lanczos with full
//     reorthogonalisation. It only needs y = A·x (matrix.Operator), so the
//     operator may be a large sparse Laplacian. Each cycle grows an
//     orthonormal block-Krylov basis V, solves the projected problem
//     H = Vᵀ·A·V with gonum's dense symmetric eigensolver, checks the explicit
//     residual ‖A·x − θ·x‖ of every wanted Ritz pair and, if some are not yet
//     accurate, restarts from the best Ritz vectors plus their residuals.
//   - DenseSolver: materialises the operator and factorises it with gonum's
//     mat.EigenSym. Exact up to rounding, O(N³); used as a reference and for
//     small graphs.
//
// Multiplicity:
//
//   - A single-vector Krylov space cannot represent more than one direction of
//     a repeated eigenvalue. The default block size equals k, so repeated
//     eigenvalues such as the zero eigenvalue of a graph with several
//     connected components are recovered with full multiplicity.
//
// Ordering and sign:
//
//   - Result.Values are ascending; column j of Result.Vectors belongs to
//     Values[j]. Each vector is scaled to unit length and its entry of largest
//     magnitude is made positive. Order among numerically equal eigenvalues is
//     not meaningful.
//
// Failure:
//
//   - A solver that runs out of restarts returns *NotConvergedError (matches
//     ErrNotConverged via errors.Is). It carries the current Ritz pairs as
//     Partial; they are diagnostics, not results.
//
// Determinism: for fixed options (including the seed) and a deterministic
// operator, results are bit-identical across runs.
package eigen
