// SPDX-License-Identifier: MIT

package kmeans

import (
	"math"
	"math/rand"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// state is the per-worker scratch space of one restart. Layouts are
// row-major and contiguous for BLAS.
type state struct {
	n, k, dim int

	x     []float64 // n×dim, shared read-only
	xNorm []float64 // ‖x_i‖², shared read-only

	centroids []float64 // k×dim
	cNorm     []float64 // ‖c_j‖²
	next      []float64 // k×dim accumulator
	dots      []float64 // n×k, X·Cᵀ
	labels    []int
	counts    []int
	far       []float64 // scratch for empty-cluster repair
}

func newState(x, xNorm []float64, n, k, dim int) *state {
	return &state{
		n: n, k: k, dim: dim,
		x:         x,
		xNorm:     xNorm,
		centroids: make([]float64, k*dim),
		cNorm:     make([]float64, k),
		next:      make([]float64, k*dim),
		dots:      make([]float64, n*k),
		labels:    make([]int, n),
		counts:    make([]int, k),
		far:       make([]float64, n),
	}
}

func (s *state) point(i int) []float64    { return s.x[i*s.dim : (i+1)*s.dim] }
func (s *state) centroid(j int) []float64 { return s.centroids[j*s.dim : (j+1)*s.dim] }

// dist returns the clamped squared distance between point i and centroid j
// from the current dot products.
func (s *state) dist(i, j int) float64 {
	d := s.xNorm[i] + s.cNorm[j] - 2*s.dots[i*s.k+j]
	if d < 0 {
		return 0
	}

	return d
}

// run performs one seeded restart and returns the number of centroid updates.
func (s *state) run(rng *rand.Rand, maxIter int) int {
	s.seedPlusPlus(rng)
	s.computeCentroidNorms()
	for i := range s.labels {
		s.labels[i] = -1
	}

	var iter int
	for {
		s.computeDots()
		changed := s.assign()
		if !changed || iter == maxIter {
			return iter
		}
		s.update()
		s.repairEmpty(rng)
		s.computeCentroidNorms()
		iter++
	}
}

// seedPlusPlus picks initial centroids with k-means++ (D² sampling).
func (s *state) seedPlusPlus(rng *rand.Rand) {
	first := rng.Intn(s.n)
	copy(s.centroid(0), s.point(first))

	best := s.far
	for i := range best {
		best[i] = math.MaxFloat64
	}
	dots := make([]float64, s.n)
	xs := blas64.General{Rows: s.n, Cols: s.dim, Stride: s.dim, Data: s.x}

	var total, d float64
	for c := 1; c < s.k; c++ {
		prev := s.centroid(c - 1)
		prevNorm := vek.Dot(prev, prev)
		blas64.Gemv(blas.NoTrans, 1, xs, blas64.Vector{N: s.dim, Inc: 1, Data: prev}, 0, blas64.Vector{N: s.n, Inc: 1, Data: dots})

		total = 0
		for i := 0; i < s.n; i++ {
			d = s.xNorm[i] + prevNorm - 2*dots[i]
			if d < 0 {
				d = 0
			}
			if d < best[i] {
				best[i] = d
			}
			total += best[i]
		}

		pick := s.n - 1
		if total == 0 {
			pick = rng.Intn(s.n)
		} else {
			target := rng.Float64() * total
			var cum float64
			for i, v := range best {
				cum += v
				if cum >= target && v > 0 {
					pick = i
					break
				}
			}
		}
		copy(s.centroid(c), s.point(pick))
	}
}

func (s *state) computeCentroidNorms() {
	for j := 0; j < s.k; j++ {
		c := s.centroid(j)
		s.cNorm[j] = vek.Dot(c, c)
	}
}

// computeDots sets dots = X·Cᵀ with one GEMM.
func (s *state) computeDots() {
	blas64.Gemm(blas.NoTrans, blas.Trans, 1,
		blas64.General{Rows: s.n, Cols: s.dim, Stride: s.dim, Data: s.x},
		blas64.General{Rows: s.k, Cols: s.dim, Stride: s.dim, Data: s.centroids},
		0,
		blas64.General{Rows: s.n, Cols: s.k, Stride: s.k, Data: s.dots},
	)
}

// assign moves every point to its nearest centroid and reports whether any
// label changed.
func (s *state) assign() bool {
	for j := range s.counts {
		s.counts[j] = 0
	}

	var changed bool
	var bestJ int
	var bestD, d float64
	for i := 0; i < s.n; i++ {
		bestJ, bestD = 0, s.dist(i, 0)
		for j := 1; j < s.k; j++ {
			if d = s.dist(i, j); d < bestD {
				bestJ, bestD = j, d
			}
		}
		if s.labels[i] != bestJ {
			s.labels[i] = bestJ
			changed = true
		}
		s.counts[bestJ]++
	}

	return changed
}

// update moves centroids to the mean of their points. Empty centroids keep
// their position until repairEmpty runs.
func (s *state) update() {
	for i := range s.next {
		s.next[i] = 0
	}
	for i := 0; i < s.n; i++ {
		vek.Add_Inplace(s.next[s.labels[i]*s.dim:(s.labels[i]+1)*s.dim], s.point(i))
	}
	for j := 0; j < s.k; j++ {
		acc := s.next[j*s.dim : (j+1)*s.dim]
		if s.counts[j] == 0 {
			copy(acc, s.centroid(j))
			continue
		}
		vek.MulNumber_Inplace(acc, 1/float64(s.counts[j]))
	}
	s.centroids, s.next = s.next, s.centroids
}

// repairEmpty moves each empty centroid onto the point farthest from its
// assigned centroid. Distances refer to the centroids of the last assignment.
func (s *state) repairEmpty(rng *rand.Rand) {
	far := s.far
	var prepared bool
	for j := 0; j < s.k; j++ {
		if s.counts[j] > 0 {
			continue
		}
		if !prepared {
			for i := 0; i < s.n; i++ {
				far[i] = s.dist(i, s.labels[i])
			}
			prepared = true
		}

		pick := -1
		bestD := -1.0
		for i, d := range far {
			if d > bestD {
				pick, bestD = i, d
			}
		}
		if pick < 0 {
			pick = rng.Intn(s.n)
		}
		far[pick] = -1
		copy(s.centroid(j), s.point(pick))
	}
}

// inertia returns Σ‖x_i − c_{z_i}‖² computed directly.
func (s *state) inertia() float64 {
	var total float64
	for i := 0; i < s.n; i++ {
		total += squaredDistance(s.point(i), s.centroid(s.labels[i]))
	}

	return total
}

func squaredDistance(a, b []float64) float64 {
	d := vek.Distance(a, b)
	return d * d
}
