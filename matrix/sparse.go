// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (CSR) for adjacency matrices and Laplacians.
//
// Purpose:
//   - Hold N×N graphs with O(N + nnz) memory.
//   - Offer the two kernels the pipeline needs: row iteration (Do) and y = A·x (MulVec).
//   - Stay immutable after construction so it can be shared freely across goroutines.
//
// Layout:
//   - rowPtr has N+1 entries; row i occupies colIdx/vals[rowPtr[i]:rowPtr[i+1]].
//   - Column indices within a row are strictly increasing (duplicates merged).
//
// Complexity quicksheet:
//   - NewSparse: O(nnz log nnz) sort + O(nnz) merge; At: O(log deg(i)); MulVec: O(nnz).

package matrix

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
)

const (
	// parallelMinRows is the row count from which MulVec fans out across goroutines.
	parallelMinRows = 4096

	// minRowsPerWorker keeps per-goroutine chunks large enough to amortise scheduling.
	minRowsPerWorker = 1024
)

// Sparse is an immutable square matrix in compressed sparse row form.
type Sparse struct {
	n      int
	rowPtr []int
	colIdx []int
	vals   []float64
}

var (
	_ Matrix   = (*Sparse)(nil)
	_ Operator = (*Sparse)(nil)
)

// NewSparse assembles an n×n CSR matrix from coordinate triplets.
//
// Implementation:
//   - Stage 1 (Validate): n > 0; every coordinate in range; every value finite.
//   - Stage 2 (Prepare): stable-sort a copy of the triplets by (row, col).
//   - Stage 3 (Execute): merge duplicates by summation, drop exact zeros, fill CSR arrays.
//
// Errors:
//   - ErrInvalidDimensions (n <= 0), ErrOutOfRange (bad coordinate), ErrNaNInf.
//
// Determinism:
//   - Duplicate coordinates are summed in input order (stable sort), so the
//     floating-point result is reproducible for a fixed triplet slice.
//
// Complexity: O(t log t) for t triplets, O(n + t) memory.
func NewSparse(n int, entries []Triplet) (*Sparse, error) {
	if n <= 0 {
		return nil, matrixErrorf("NewSparse", ErrInvalidDimensions)
	}
	for k, e := range entries {
		if e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			return nil, fmt.Errorf("NewSparse: entry %d (%d,%d): %w", k, e.Row, e.Col, ErrOutOfRange)
		}
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return nil, fmt.Errorf("NewSparse: entry %d (%d,%d): %w", k, e.Row, e.Col, ErrNaNInf)
		}
	}

	sorted := make([]Triplet, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	s := &Sparse{
		n:      n,
		rowPtr: make([]int, n+1),
		colIdx: make([]int, 0, len(sorted)),
		vals:   make([]float64, 0, len(sorted)),
	}

	// Merge runs of equal (row, col); rowPtr first counts entries per row.
	var k, start int
	var sum float64
	for k = 0; k < len(sorted); {
		start = k
		sum = 0
		for k < len(sorted) && sorted[k].Row == sorted[start].Row && sorted[k].Col == sorted[start].Col {
			sum += sorted[k].Value
			k++
		}
		if sum == 0 {
			continue
		}
		s.colIdx = append(s.colIdx, sorted[start].Col)
		s.vals = append(s.vals, sum)
		s.rowPtr[sorted[start].Row+1]++
	}
	for i := 0; i < n; i++ {
		s.rowPtr[i+1] += s.rowPtr[i]
	}

	return s, nil
}

// Identity returns the n×n identity as a Sparse matrix.
func Identity(n int) (*Sparse, error) {
	entries := make([]Triplet, n)
	for i := range entries {
		entries[i] = Triplet{Row: i, Col: i, Value: 1}
	}

	return NewSparse(n, entries)
}

// Rows returns N. Complexity: O(1).
func (s *Sparse) Rows() int { return s.n }

// Cols returns N. Complexity: O(1).
func (s *Sparse) Cols() int { return s.n }

// Dim returns N. Complexity: O(1).
func (s *Sparse) Dim() int { return s.n }

// NNZ returns the number of stored (non-zero) entries.
func (s *Sparse) NNZ() int { return len(s.vals) }

// At returns A[i,j] (0 for absent entries) or a wrapped ErrOutOfRange.
// Complexity: O(log deg(i)) via binary search in the row.
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, fmt.Errorf("Sparse.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	p := lo + sort.SearchInts(s.colIdx[lo:hi], j)
	if p < hi && s.colIdx[p] == j {
		return s.vals[p], nil
	}

	return 0, nil
}

// Do calls fn(j, v) for every stored entry of row i in ascending column order.
// Out-of-range rows are ignored.
// Complexity: O(deg(i)).
func (s *Sparse) Do(i int, fn func(j int, v float64)) {
	if i < 0 || i >= s.n {
		return
	}
	for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
		fn(s.colIdx[p], s.vals[p])
	}
}

// RowNNZ returns the number of stored entries in row i (0 when out of range).
func (s *Sparse) RowNNZ(i int) int {
	if i < 0 || i >= s.n {
		return 0
	}

	return s.rowPtr[i+1] - s.rowPtr[i]
}

// RowSums returns Σ_j A[i,j] for every row (the degree vector for adjacency input).
// Complexity: O(n + nnz).
func (s *Sparse) RowSums() []float64 {
	out := make([]float64, s.n)
	var p int
	for i := 0; i < s.n; i++ {
		for p = s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			out[i] += s.vals[p]
		}
	}

	return out
}

// Diagonal returns A[i,i] for every i.
// Complexity: O(n log maxdeg).
func (s *Sparse) Diagonal() []float64 {
	out := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		out[i], _ = s.At(i, i)
	}

	return out
}

// Triplets returns the stored entries in (row, col) order.
// Useful to derive a new matrix with the same sparsity pattern.
func (s *Sparse) Triplets() []Triplet {
	out := make([]Triplet, 0, len(s.vals))
	for i := 0; i < s.n; i++ {
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			out = append(out, Triplet{Row: i, Col: s.colIdx[p], Value: s.vals[p]})
		}
	}

	return out
}

// IsSymmetric reports whether |A[i,j] - A[j,i]| <= tol for all i, j.
// Missing counterparts count as zero, so a one-sided entry larger than tol fails.
// Complexity: O(nnz log maxdeg).
func (s *Sparse) IsSymmetric(tol float64) bool {
	var p, j int
	var aji float64
	for i := 0; i < s.n; i++ {
		for p = s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			j = s.colIdx[p]
			if j <= i {
				// Lower triangle entries are checked from the upper side; pure
				// lower-only entries are caught below when (j,i) has no partner.
				if j == i {
					continue
				}
				if v, _ := s.At(j, i); v == 0 && math.Abs(s.vals[p]) > tol {
					return false
				}
				continue
			}
			aji, _ = s.At(j, i)
			if math.Abs(s.vals[p]-aji) > tol {
				return false
			}
		}
	}

	return true
}

// ToDense materialises the matrix; intended for small problems and tests.
// Complexity: O(n^2) memory.
func (s *Sparse) ToDense() *Dense {
	d := &Dense{r: s.n, c: s.n, data: make([]float64, s.n*s.n)}
	for i := 0; i < s.n; i++ {
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			d.data[i*s.n+s.colIdx[p]] = s.vals[p]
		}
	}

	return d
}

// MulVec computes dst = A·x. len(dst) and len(x) must equal Dim().
// Large matrices are split into contiguous row blocks processed concurrently;
// each dst[i] is accumulated by exactly one goroutine in column order, so the
// output is identical to the serial kernel.
// Complexity: O(nnz).
func (s *Sparse) MulVec(dst, x []float64) {
	workers := runtime.GOMAXPROCS(0)
	if s.n < parallelMinRows || workers < 2 {
		s.mulRows(dst, x, 0, s.n)
		return
	}
	if maxWorkers := s.n / minRowsPerWorker; workers > maxWorkers {
		workers = maxWorkers
	}

	chunk := (s.n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < s.n; lo += chunk {
		hi := lo + chunk
		if hi > s.n {
			hi = s.n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			s.mulRows(dst, x, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// mulRows is the serial CSR kernel over rows [lo, hi).
func (s *Sparse) mulRows(dst, x []float64, lo, hi int) {
	var p int
	var sum float64
	for i := lo; i < hi; i++ {
		sum = 0
		for p = s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			sum += s.vals[p] * x[s.colIdx[p]]
		}
		dst[i] = sum
	}
}
