// SPDX-License-Identifier: MIT

// Package builder assembles deterministic synthetic adjacency matrices for
// tests, benchmarks and the `speclust generate` command.
//
// Composition model:
//
//   - BuildGraph(opts, cons...) runs constructors in order against a shared
//     accumulator. Every topology constructor appends a NEW block of vertices,
//     so composing constructors yields a disjoint union:
//
//     BuildAdjacency(nil, Complete(3), Complete(3)) // two disjoint triangles
//
//   - Bridge(u, v) is the only linking constructor: it connects two already
//     existing vertices, e.g. to join blocks into a connected "barbell".
//   - Each vertex remembers the block it was created in (Graph.Blocks). For
//     PlantedPartition every community is its own block, which gives a ground
//     truth partition for clustering tests.
//
// Constructors:
//
//   - Complete(n), Cycle(n), Path(n), Star(n), Grid(r, c), Isolated(n)
//   - RandomSparse(n, p): Erdős–Rényi G(n, p)
//   - PlantedPartition(sizes, pIn, pOut): stochastic block model
//   - Bridge(u, v)
//
// Determinism:
//
//   - Vertices are numbered 0..N-1 in creation order.
//   - Edge trials run in i asc, j asc order (j > i), one Bernoulli draw each.
//   - Same options, same seed, same constructor order ⇒ identical matrices.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrUnknownVertex, ErrConstructFailed.
//
// Option constructors (WithX) panic on meaningless values such as a nil RNG
// or a non-positive constant weight; constructors themselves never panic.
package builder
