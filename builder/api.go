// SPDX-License-Identifier: MIT
//
// BuildGraph resolves options once, then runs constructors in order against a
// shared Accumulator. Equal options, seed and constructor order give equal
// matrices. Shapes live in shapes.go and random.go.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spectral/matrix"
)

// Constructor applies a deterministic mutation to the accumulator using the
// resolved builderConfig. Constructors validate parameters before touching
// the accumulator.
type Constructor func(acc *Accumulator, cfg builderConfig) error

// Graph is the product of BuildGraph.
type Graph struct {
	// Adjacency is the symmetric non-negative N×N adjacency matrix.
	Adjacency *matrix.Sparse
	// Blocks[i] is the block (community) vertex i was created in.
	Blocks []int
}

// Accumulator collects vertices and undirected edges while constructors run.
type Accumulator struct {
	n       int
	blocks  []int
	next    int
	entries []matrix.Triplet
}

// Len returns the number of vertices added so far.
func (a *Accumulator) Len() int { return a.n }

// addBlock appends k vertices tagged with a fresh block id and returns the
// index of the first one.
func (a *Accumulator) addBlock(k int) int {
	first := a.n
	for i := 0; i < k; i++ {
		a.blocks = append(a.blocks, a.next)
	}
	a.n += k
	a.next++

	return first
}

// addEdge records the undirected edge {u,v} with weight w. A self-loop is
// stored once on the diagonal.
func (a *Accumulator) addEdge(u, v int, w float64) error {
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("addEdge(%d,%d,w=%g): non-positive or non-finite weight: %w", u, v, w, ErrConstructFailed)
	}
	a.entries = append(a.entries, matrix.Triplet{Row: u, Col: v, Value: w})
	if u != v {
		a.entries = append(a.entries, matrix.Triplet{Row: v, Col: u, Value: w})
	}

	return nil
}

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order. Constructor errors are wrapped as "BuildGraph: %w".
//
// Errors:
//   - ErrConstructFailed for a nil constructor or matrix assembly failure.
//   - ErrTooFewVertices when no constructor produced a vertex.
//   - Any constructor sentinel.
//
// Complexity: Σ constructor cost + O(E log E) CSR assembly.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	cfg := newBuilderConfig(bopts...)
	acc := &Accumulator{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(acc, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if acc.n == 0 {
		return nil, fmt.Errorf("BuildGraph: no vertices: %w", ErrTooFewVertices)
	}

	adj, err := matrix.NewSparse(acc.n, acc.entries)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}

	return &Graph{Adjacency: adj, Blocks: acc.blocks}, nil
}

// BuildAdjacency is BuildGraph without block bookkeeping.
func BuildAdjacency(bopts []BuilderOption, cons ...Constructor) (*matrix.Sparse, error) {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return g.Adjacency, nil
}
