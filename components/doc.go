// SPDX-License-Identifier: MIT

// Package components traverses an adjacency matrix breadth-first and labels
// its connected components.
//
// What
//
//   - BFS explores nodes in non-decreasing hop distance from a start node and
//     returns the visit order, hop depths and BFS-tree parents.
//   - Hooks: OnVisit may abort the walk with an error; WithMinWeight prunes
//     weak edges; WithMaxDepth bounds the search.
//   - Label assigns every node the index of its connected component.
//
// Why
//
//	The number of connected components equals the multiplicity of the zero
//	eigenvalue of the Laplacian. When a graph has k or more components the
//	spectral embedding is an indicator basis of components, which is worth
//	knowing before reading cluster labels.
//
// Determinism
//
//	Neighbors are visited in ascending column order of the CSR row, so the
//	visit order and the component numbering are reproducible. Components are
//	numbered by their smallest node index.
//
// Complexity: O(N + nnz) time, O(N) memory.
package components
