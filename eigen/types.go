// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spectral/matrix"
)

// Solver computes the k algebraically smallest eigenpairs of a symmetric operator.
type Solver interface {
	Smallest(op matrix.Operator, k int) (*Result, error)
}

// Result holds k eigenpairs in ascending order of eigenvalue.
type Result struct {
	// Values are the eigenvalues, ascending.
	Values []float64
	// Vectors is N×k; column j is the unit eigenvector for Values[j].
	Vectors *matrix.Dense
	// Restarts is the number of restart cycles the solver used.
	Restarts int
	// MatVecs is the number of operator applications.
	MatVecs int
}

// Vector returns a copy of the j-th eigenvector.
func (r *Result) Vector(j int) []float64 {
	return r.Vectors.Col(j)
}

var (
	_ Solver = (*Lanczos)(nil)
	_ Solver = DenseSolver{}
)

// validate checks the common preconditions of every solver.
func validate(method string, op matrix.Operator, k int) (int, error) {
	if op == nil {
		return 0, fmt.Errorf("%s: %w", method, ErrNilOperator)
	}
	n := op.Dim()
	if k < 1 || k > n {
		return 0, fmt.Errorf("%s: k=%d, N=%d: %w", method, k, n, ErrInvalidK)
	}

	return n, nil
}

// fixSign flips x so that its entry of largest magnitude (first on ties) is positive.
func fixSign(x []float64) {
	var best float64
	var at int
	for i, v := range x {
		if math.Abs(v) > best {
			best = math.Abs(v)
			at = i
		}
	}
	if best > 0 && x[at] < 0 {
		for i := range x {
			x[i] = -x[i]
		}
	}
}

// newResult packs k column vectors (each of length n) into a Result.
func newResult(values []float64, cols [][]float64, n int) (*Result, error) {
	k := len(values)
	vecs, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, err
	}
	data := vecs.RawData()
	for j, col := range cols {
		fixSign(col)
		for i, v := range col {
			data[i*k+j] = v
		}
	}

	return &Result{Values: values, Vectors: vecs}, nil
}
