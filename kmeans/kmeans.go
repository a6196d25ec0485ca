// SPDX-License-Identifier: MIT

package kmeans

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/viterin/vek"
)

// Result is the outcome of the winning restart.
type Result struct {
	// Labels[i] ∈ [0, k) is the cluster of row i.
	Labels []int
	// Centroids is k×dim.
	Centroids *matrix.Dense
	// Inertia is Σ‖x_i − c_{Labels[i]}‖².
	Inertia float64
	// Iterations is the number of centroid updates of the winning restart.
	Iterations int
	// Restart is the index of the winning restart.
	Restart int
	// Sizes[j] is the number of rows labelled j.
	Sizes []int
	// Empty lists clusters with no rows, ascending.
	Empty []int
}

// outcome is what one restart hands back for selection.
type outcome struct {
	labels     []int
	centroids  []float64
	counts     []int
	inertia    float64
	iterations int
}

// Fit clusters the rows of x into k groups.
//
// Implementation:
//   - Stage 1 (Validate): x non-empty, 1 ≤ k ≤ rows.
//   - Stage 2 (Prepare): apply defaults; precompute ‖x_i‖².
//   - Stage 3 (Execute): run cfg.Restarts seeded restarts (serially or on
//     cfg.Workers goroutines) and keep the lowest inertia, lowest index on ties.
//
// x is read, never modified.
//
// Complexity: O(Restarts · Iterations · n·k·dim) time, O(n·(k+dim)) memory per worker.
func Fit(x *matrix.Dense, k int, cfg Config) (*Result, error) {
	if x == nil {
		return nil, fmt.Errorf("Fit: %w", ErrEmptyInput)
	}
	n, dim := x.Shape()
	if n == 0 || dim == 0 {
		return nil, fmt.Errorf("Fit: %dx%d: %w", n, dim, ErrEmptyInput)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("Fit: k=%d, rows=%d: %w", k, n, ErrInvalidK)
	}
	cfg = cfg.withDefaults()

	data := x.RawData()
	xNorm := make([]float64, n)
	for i := 0; i < n; i++ {
		row := data[i*dim : (i+1)*dim]
		xNorm[i] = vek.Dot(row, row)
	}

	outcomes := make([]outcome, cfg.Restarts)
	runOne := func(st *state, r int) {
		iters := st.run(restartRNG(cfg.Seed, r), cfg.MaxIterations)
		outcomes[r] = outcome{
			labels:     append([]int(nil), st.labels...),
			centroids:  append([]float64(nil), st.centroids...),
			counts:     append([]int(nil), st.counts...),
			inertia:    st.inertia(),
			iterations: iters,
		}
	}

	if cfg.Workers == 1 {
		st := newState(data, xNorm, n, k, dim)
		for r := 0; r < cfg.Restarts; r++ {
			runOne(st, r)
		}
	} else {
		jobs := make(chan int, cfg.Restarts)
		for r := 0; r < cfg.Restarts; r++ {
			jobs <- r
		}
		close(jobs)

		var wg sync.WaitGroup
		for w := 0; w < cfg.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				st := newState(data, xNorm, n, k, dim)
				for r := range jobs {
					runOne(st, r)
				}
			}()
		}
		wg.Wait()
	}

	best := 0
	for r := 1; r < len(outcomes); r++ {
		if outcomes[r].inertia < outcomes[best].inertia {
			best = r
		}
	}

	return buildResult(outcomes[best], best, k, dim)
}

func buildResult(o outcome, restart, k, dim int) (*Result, error) {
	cents, err := matrix.NewDenseFrom(k, dim, o.centroids)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	res := &Result{
		Labels:     o.labels,
		Centroids:  cents,
		Inertia:    o.inertia,
		Iterations: o.iterations,
		Restart:    restart,
		Sizes:      o.counts,
	}
	for j, c := range o.counts {
		if c == 0 {
			res.Empty = append(res.Empty, j)
		}
	}

	return res, nil
}
