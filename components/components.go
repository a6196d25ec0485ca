// SPDX-License-Identifier: MIT

package components

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
)

// Unreached marks nodes BFS did not reach in Depth and Parent.
const Unreached = -1

// Result holds the outcome of a BFS walk.
type Result struct {
	// Order lists visited nodes in visit sequence.
	Order []int
	// Depth[v] is the hop distance from the start, Unreached if not visited.
	Depth []int
	// Parent[v] is v's predecessor in the BFS tree; Unreached for the start
	// and for unvisited nodes.
	Parent []int
}

// PathTo reconstructs the node path from the start to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] == Unreached {
		return nil, fmt.Errorf("components: no path to %d", dest)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// BFS walks a from start. Every stored entry (i, j) with weight ≥ MinWeight
// is an edge i → j; for a symmetric a this is the undirected graph.
//
// Errors: matrix.ErrNilMatrix, ErrStartOutOfRange, ErrOptionViolation, the
// context error, or the wrapped OnVisit error.
func BFS(a *matrix.Sparse, start int, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, fmt.Errorf("BFS: %w", matrix.ErrNilMatrix)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := a.Dim()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("BFS: start %d, N=%d: %w", start, n, ErrStartOutOfRange)
	}

	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  filled(n, Unreached),
		Parent: filled(n, Unreached),
	}
	res.Depth[start] = 0
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		u := queue[qi]
		res.Order = append(res.Order, u)
		if err := o.onVisit(u, res.Depth[u]); err != nil {
			return nil, fmt.Errorf("BFS: OnVisit at %d: %w", u, err)
		}

		next := res.Depth[u] + 1
		if o.maxDepth > 0 && next > o.maxDepth {
			continue
		}
		a.Do(u, func(v int, w float64) {
			if w < o.minWeight || res.Depth[v] != Unreached {
				return
			}
			res.Depth[v] = next
			res.Parent[v] = u
			queue = append(queue, v)
		})
	}

	return res, nil
}

// Label returns the component index of every node and the number of
// components. a is read as undirected, so it should be symmetric; components
// are numbered by their smallest node index.
func Label(a *matrix.Sparse) ([]int, int, error) {
	if a == nil {
		return nil, 0, fmt.Errorf("Label: %w", matrix.ErrNilMatrix)
	}
	n := a.Dim()
	labels := filled(n, Unreached)
	queue := make([]int, 0, n)
	var count int
	for s := 0; s < n; s++ {
		if labels[s] != Unreached {
			continue
		}
		labels[s] = count
		queue = append(queue[:0], s)
		for qi := 0; qi < len(queue); qi++ {
			a.Do(queue[qi], func(v int, _ float64) {
				if labels[v] == Unreached {
					labels[v] = count
					queue = append(queue, v)
				}
			})
		}
		count++
	}

	return labels, count, nil
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}
