// SPDX-License-Identifier: MIT

// Package kmeans implements seeded Lloyd k-means with k-means++ seeding and
// best-of-N restarts.
//
// Kernel:
//
//	‖x_i − c_j‖² = ‖x_i‖² + ‖c_j‖² − 2·(x_i · c_j)
//
// All dot products X·Cᵀ are computed per iteration with one BLAS GEMM
// (gonum blas64); point norms are computed once.
//
// Algorithm per restart:
//
//   - k-means++ seeding from a restart-private RNG.
//   - Assign every point to its nearest centroid (lowest index on ties);
//     stop when no assignment changes or MaxIterations updates were made.
//   - Move each centroid to the mean of its points. A centroid left without
//     points is moved onto the point farthest from its current centroid
//     (distinct points for distinct empty clusters).
//
// The result is the restart with the lowest inertia (ties → lowest restart
// index). Clusters may still end up empty, e.g. when fewer than k distinct
// points exist; Result.Empty lists them and Result.Sizes reports zero.
//
// Determinism: each restart draws from its own RNG derived from Config.Seed
// with a SplitMix64 mix, so Workers > 1 returns exactly what a serial run
// returns.
package kmeans
