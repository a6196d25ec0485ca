// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
	"gonum.org/v1/gonum/mat"
)

// DenseSolver materialises the operator as an N×N symmetric matrix and runs a
// full dense eigendecomposition (gonum mat.EigenSym).
//
// Cost is O(N²) memory and O(N³) time. A *matrix.Sparse operator is
// densified directly; any other operator costs N applications of MulVec.
type DenseSolver struct{}

// Smallest returns the k smallest eigenpairs of op. The operator is
// symmetrised as (A + Aᵀ)/2 before factorisation.
func (DenseSolver) Smallest(op matrix.Operator, k int) (*Result, error) {
	n, err := validate("DenseSolver.Smallest", op, k)
	if err != nil {
		return nil, err
	}

	var data []float64
	var matvecs int
	if s, ok := op.(*matrix.Sparse); ok {
		data = s.ToDense().RawData()
	} else {
		data = make([]float64, n*n)
		e := make([]float64, n)
		col := make([]float64, n)
		for j := 0; j < n; j++ {
			e[j] = 1
			op.MulVec(col, e)
			e[j] = 0
			for i := 0; i < n; i++ {
				data[i*n+j] = col[i]
			}
		}
		matvecs = n
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(data[i*n+j]+data[j*n+i]))
		}
	}

	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return nil, &NotConvergedError{Wanted: k}
	}
	values := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	cols := make([][]float64, k)
	for j := range cols {
		cols[j] = mat.Col(nil, j, &vecs)
	}
	res, err := newResult(values[:k:k], cols, n)
	if err != nil {
		return nil, fmt.Errorf("DenseSolver.Smallest: %w", err)
	}
	res.MatVecs = matvecs

	return res, nil
}
