// SPDX-License-Identifier: MIT

// Dense: row-major float64 storage used for embeddings, feature tables and
// small Laplacians handed to the dense eigensolver.
//
// Element (i, j) lives at data[i*c+j]. Accessors never panic on bad
// coordinates; they report ErrOutOfRange wrapped with the offending cell.
// Row and RawData alias storage so kernels avoid copies.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// cellErr tags err with the method and cell that triggered it.
func cellErr(op string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s[%d,%d]: %w", op, i, j, err)
}

// Dense is an r×c matrix backed by one contiguous slice.
type Dense struct {
	r, c int
	data []float64
}

var (
	_ Matrix       = (*Dense)(nil)
	_ Operator     = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense allocates a zeroed rows×cols matrix.
// Both dimensions must be positive (ErrInvalidDimensions).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom copies data (row-major, len rows*cols) into a new matrix.
// Non-finite entries are rejected with ErrNaNInf naming the cell.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != len(m.data) {
		return nil, matrixErrorf("NewDenseFrom", ErrDimensionMismatch)
	}
	for off, v := range data {
		if !isFinite(v) {
			return nil, cellErr("NewDenseFrom", off/cols, off%cols, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return m, nil
}

func (m *Dense) Rows() int { return m.r }

func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Dim reports the row count; MulVec assumes a square receiver.
func (m *Dense) Dim() int { return m.r }

// inside reports whether (i, j) addresses a stored cell.
func (m *Dense) inside(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At reads cell (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	if !m.inside(i, j) {
		return 0, cellErr("At", i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set writes a finite v into cell (i, j).
func (m *Dense) Set(i, j int, v float64) error {
	switch {
	case !m.inside(i, j):
		return cellErr("Set", i, j, ErrOutOfRange)
	case !isFinite(v):
		return cellErr("Set", i, j, ErrNaNInf)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Row aliases row i (nil when i is out of range). The returned slice has
// its capacity clipped so appends cannot spill into the next row.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi]
}

// Col copies column j, or returns nil when j is out of range.
func (m *Dense) Col(j int) []float64 {
	if j < 0 || j >= m.c {
		return nil
	}
	col := make([]float64, m.r)
	for i, off := 0, j; i < m.r; i, off = i+1, off+m.c {
		col[i] = m.data[off]
	}

	return col
}

// RawData is the live row-major buffer, length Rows*Cols.
func (m *Dense) RawData() []float64 { return m.data }

// Clone deep-copies m.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// MulVec sets dst = m·x. Each dst[i] is summed left to right over row i,
// so results are bit-for-bit reproducible.
func (m *Dense) MulVec(dst, x []float64) {
	for i := range dst[:m.r] {
		var acc float64
		for j, a := range m.Row(i) {
			acc += a * x[j]
		}
		dst[i] = acc
	}
}

// String renders one bracketed row per line; intended for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j, v := range m.Row(i) {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
