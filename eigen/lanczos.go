// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/viterin/vek"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// breakdownRel is the fraction of a candidate's norm that must survive
// orthogonalisation for it to extend the basis.
const breakdownRel = 1e-10

// Lanczos is a block thick-restart Lanczos solver. The zero value is usable
// and equals NewLanczos().
type Lanczos struct {
	subspace    int
	block       int
	maxRestarts int
	tol         float64
	seed        int64
	bound       float64
}

// NewLanczos returns a solver with defaults: subspace max(3k, 20), block k,
// DefaultMaxRestarts, DefaultTolerance, seed 0, bound estimated.
func NewLanczos(opts ...Option) *Lanczos {
	s := &Lanczos{maxRestarts: DefaultMaxRestarts, tol: DefaultTolerance}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// dims resolves the basis size m and block size b for an N×N problem.
func (s *Lanczos) dims(n, k int) (m, b int) {
	b = s.block
	if b == 0 {
		b = k
	}
	if b > n {
		b = n
	}
	m = s.subspace
	if m == 0 {
		m = subspacePerPair * k
		if m < minSubspace {
			m = minSubspace
		}
	}
	if m < k+b+1 {
		m = k + b + 1
	}
	if m > n {
		m = n
	}

	return m, b
}

// Smallest returns the k smallest eigenpairs of the symmetric operator op.
//
// Implementation:
//   - Stage 1 (Validate): op non-nil, 1 ≤ k ≤ N.
//   - Stage 2 (Prepare): b random start vectors, orthonormalised.
//   - Stage 3 (Execute): per cycle, extend the basis to m vectors by applying
//     A to basis vectors in order (block Krylov), solve H = VᵀAV, compute
//     explicit residuals of the k lowest Ritz pairs. Stop when all satisfy
//     ‖r‖ ≤ tol·scale or the basis spans R^N; otherwise keep the lowest l Ritz
//     vectors, append the residuals of the unconverged wanted pairs and repeat.
//
// Errors: ErrNilOperator, ErrInvalidK, *NotConvergedError, matrix.ErrNaNInf
// when the operator produces non-finite values.
//
// Complexity: O(m·nnz + m²·N) per cycle, O(m·N) memory.
func (s *Lanczos) Smallest(op matrix.Operator, k int) (*Result, error) {
	n, err := validate("Lanczos.Smallest", op, k)
	if err != nil {
		return nil, err
	}
	cfg := s.resolved()
	m, b := cfg.dims(n, k)
	run := newLanczosRun(op, n, m, rand.New(rand.NewSource(cfg.seed)))
	for i := 0; i < b; i++ {
		if !run.push(run.randomVector()) && run.err == nil {
			break
		}
	}

	var restarts int
	for {
		run.expand(m)
		if run.err != nil {
			return nil, fmt.Errorf("Lanczos.Smallest: %w", run.err)
		}
		if run.nb < k {
			return nil, fmt.Errorf("Lanczos.Smallest: basis of %d vectors for k=%d: %w", run.nb, k, ErrNotConverged)
		}

		keep := cfg.keep(run.nb, k, b)
		rr, err := run.rayleighRitz(keep)
		if err != nil {
			return nil, fmt.Errorf("Lanczos.Smallest: %w", err)
		}

		scale := cfg.bound
		if scale == 0 {
			scale = math.Max(math.Abs(rr.theta[0]), math.Abs(rr.theta[run.nb-1]))
		}
		if scale == 0 {
			scale = 1
		}

		var converged int
		unconverged := make([]int, 0, k)
		for j := 0; j < k; j++ {
			if rr.resid[j] <= cfg.tol*scale {
				converged++
			} else {
				unconverged = append(unconverged, j)
			}
		}

		if converged == k || run.full() {
			return run.result(rr, k, restarts)
		}
		if restarts == cfg.maxRestarts {
			partial, perr := run.result(rr, k, restarts)
			if perr != nil {
				return nil, fmt.Errorf("Lanczos.Smallest: %w", perr)
			}
			return nil, &NotConvergedError{Converged: converged, Wanted: k, Restarts: restarts, Partial: partial}
		}

		restarts++
		run.restart(rr)
		for idx, j := range unconverged {
			if idx == b {
				break
			}
			run.push(rr.residual(j))
		}
		if run.err != nil {
			return nil, fmt.Errorf("Lanczos.Smallest: %w", run.err)
		}
	}
}

// resolved returns a copy of s with zero-value defaults filled in.
func (s *Lanczos) resolved() Lanczos {
	cfg := *s
	if cfg.tol == 0 {
		cfg.tol = DefaultTolerance
		cfg.maxRestarts = DefaultMaxRestarts
	}

	return cfg
}

// keep returns how many Ritz vectors survive a restart: the k wanted ones plus
// half of the free room, leaving space for b residuals and new directions.
// A restart only happens when nb = m ≥ k+b+1, so l < nb there.
func (s *Lanczos) keep(nb, k, b int) int {
	l := k + (nb-k-b)/2
	if l < k {
		l = k
	}
	if l > nb {
		l = nb
	}

	return l
}

// lanczosRun is the mutable state of one Smallest call.
type lanczosRun struct {
	op  matrix.Operator
	n   int
	m   int
	rng *rand.Rand

	v  []float64 // basis, row-major m×n; rows [0, nb) are orthonormal
	w  []float64 // w row i = A·(v row i)
	h  []float64 // projected matrix VᵀAV, m×m
	nb int

	src     int // next basis row whose image extends the space
	matvecs int
	stalled bool // no new direction could be found
	err     error
}

func newLanczosRun(op matrix.Operator, n, m int, rng *rand.Rand) *lanczosRun {
	return &lanczosRun{
		op:  op,
		n:   n,
		m:   m,
		rng: rng,
		v:   make([]float64, m*n),
		w:   make([]float64, m*n),
		h:   make([]float64, m*m),
	}
}

func (r *lanczosRun) row(buf []float64, i int) []float64 { return buf[i*r.n : (i+1)*r.n] }

// full reports whether the basis spans the whole space, in which case the
// Ritz pairs are exact.
func (r *lanczosRun) full() bool { return r.nb == r.n || r.stalled }

func (r *lanczosRun) randomVector() []float64 {
	x := make([]float64, r.n)
	for i := range x {
		x[i] = r.rng.NormFloat64()
	}

	return x
}

// push orthogonalises x (consumed) against the basis twice, appends it and
// records A·x and the new row/column of H. It reports false on breakdown.
func (r *lanczosRun) push(x []float64) bool {
	if r.nb == r.m || r.err != nil {
		return false
	}
	before := vek.Norm(x)
	if before == 0 || math.IsNaN(before) || math.IsInf(before, 0) {
		return false
	}

	xv := blas64.Vector{N: r.n, Data: x, Inc: 1}
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < r.nb; i++ {
			vi := r.row(r.v, i)
			blas64.Axpy(-vek.Dot(vi, x), blas64.Vector{N: r.n, Data: vi, Inc: 1}, xv)
		}
	}
	after := vek.Norm(x)
	if !(after > breakdownRel*before) {
		return false
	}

	p := r.nb
	vp, wp := r.row(r.v, p), r.row(r.w, p)
	copy(vp, x)
	vek.MulNumber_Inplace(vp, 1/after)
	r.op.MulVec(wp, vp)
	r.matvecs++
	if wn := vek.Norm(wp); math.IsNaN(wn) || math.IsInf(wn, 0) {
		r.err = fmt.Errorf("operator produced non-finite values: %w", matrix.ErrNaNInf)
		return false
	}

	var hij float64
	for i := 0; i <= p; i++ {
		hij = 0.5 * (vek.Dot(r.row(r.v, i), wp) + vek.Dot(vp, r.row(r.w, i)))
		r.h[i*r.m+p] = hij
		r.h[p*r.m+i] = hij
	}
	r.nb++

	return true
}

// expand grows the basis to m vectors (or N) by block-Krylov extension;
// when the Krylov space becomes invariant a random direction is injected.
func (r *lanczosRun) expand(m int) {
	var cand []float64
	for r.nb < m && r.nb < r.n && r.err == nil {
		if r.src < r.nb {
			cand = append(cand[:0], r.row(r.w, r.src)...)
			r.src++
			r.push(cand)
			continue
		}
		if !r.push(r.randomVector()) {
			r.stalled = r.err == nil
			return
		}
		r.src = r.nb - 1
	}
}

// ritz holds one Rayleigh–Ritz step: all Ritz values and the l lowest Ritz
// vectors with their images and residual norms.
type ritz struct {
	theta []float64 // all nb Ritz values, ascending
	x     []float64 // l×n Ritz vectors
	ax    []float64 // l×n, A·x
	resid []float64 // l residual norms
	l     int
	n     int
}

func (rr *ritz) vec(buf []float64, j int) []float64 { return buf[j*rr.n : (j+1)*rr.n] }

// residual returns a fresh copy of A·x_j − θ_j·x_j.
func (rr *ritz) residual(j int) []float64 {
	out := append([]float64(nil), rr.vec(rr.ax, j)...)
	blas64.Axpy(-rr.theta[j], blas64.Vector{N: rr.n, Data: rr.vec(rr.x, j), Inc: 1}, blas64.Vector{N: rr.n, Data: out, Inc: 1})

	return out
}

// rayleighRitz solves the projected problem and forms the l lowest Ritz
// vectors: X = Yᵀ·V and A·X = Yᵀ·W (two GEMMs).
func (r *lanczosRun) rayleighRitz(l int) (*ritz, error) {
	nb := r.nb
	if l > nb {
		l = nb
	}
	hs := mat.NewSymDense(nb, nil)
	for i := 0; i < nb; i++ {
		for j := i; j < nb; j++ {
			hs.SetSym(i, j, r.h[i*r.m+j])
		}
	}
	var es mat.EigenSym
	if !es.Factorize(hs, true) {
		return nil, fmt.Errorf("projected %dx%d eigenproblem failed: %w", nb, nb, ErrNotConverged)
	}
	var y mat.Dense
	es.VectorsTo(&y)
	ys := y.Slice(0, nb, 0, l).(*mat.Dense).RawMatrix()

	rr := &ritz{
		theta: es.Values(nil),
		x:     make([]float64, l*r.n),
		ax:    make([]float64, l*r.n),
		resid: make([]float64, l),
		l:     l,
		n:     r.n,
	}
	v := blas64.General{Rows: nb, Cols: r.n, Stride: r.n, Data: r.v[:nb*r.n]}
	w := blas64.General{Rows: nb, Cols: r.n, Stride: r.n, Data: r.w[:nb*r.n]}
	x := blas64.General{Rows: l, Cols: r.n, Stride: r.n, Data: rr.x}
	ax := blas64.General{Rows: l, Cols: r.n, Stride: r.n, Data: rr.ax}
	blas64.Gemm(blas.Trans, blas.NoTrans, 1, ys, v, 0, x)
	blas64.Gemm(blas.Trans, blas.NoTrans, 1, ys, w, 0, ax)

	for j := 0; j < l; j++ {
		rr.resid[j] = vek.Norm(rr.residual(j))
	}

	return rr, nil
}

// restart replaces the basis by the l kept Ritz vectors; H becomes diag(θ).
func (r *lanczosRun) restart(rr *ritz) {
	copy(r.v, rr.x)
	copy(r.w, rr.ax)
	for i := range r.h {
		r.h[i] = 0
	}
	for j := 0; j < rr.l; j++ {
		r.h[j*r.m+j] = rr.theta[j]
	}
	r.nb = rr.l
	r.src = rr.l
}

// result packs the k lowest Ritz pairs.
func (r *lanczosRun) result(rr *ritz, k, restarts int) (*Result, error) {
	cols := make([][]float64, k)
	for j := range cols {
		cols[j] = append([]float64(nil), rr.vec(rr.x, j)...)
		vek.MulNumber_Inplace(cols[j], 1/vek.Norm(cols[j]))
	}
	res, err := newResult(append([]float64(nil), rr.theta[:k]...), cols, r.n)
	if err != nil {
		return nil, err
	}
	res.Restarts = restarts
	res.MatVecs = r.matvecs

	return res, nil
}
