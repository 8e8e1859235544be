// SPDX-License-Identifier: MIT
// Package intmat: Matrix value type, constructors and read-only accessors.

package intmat

import (
	"fmt"
	"math/big"
	"strings"
)

// Matrix is an r×c matrix of arbitrary-precision integers.
// r is rows, c is columns, and data holds r*c entries in row-major order.
// A Matrix is never modified after construction.
type Matrix struct {
	r, c int        // number of rows and columns
	data []*big.Int // flat backing storage, length == r*c
}

// New creates an r×c zero matrix.
// Stage 1 (Validate): rows and cols must be non-negative.
// Stage 2 (Prepare): allocate one big.Int per entry.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, intmatErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}

	return zeros(rows, cols), nil
}

// zeros allocates a zero matrix without validation (internal use only).
func zeros(rows, cols int) *Matrix {
	data := make([]*big.Int, rows*cols)
	for i := range data {
		data[i] = new(big.Int)
	}

	return &Matrix{r: rows, c: cols, data: data}
}

// Identity returns the n×n identity matrix. Negative n yields a 0×0 matrix.
func Identity(n int) *Matrix {
	if n < 0 {
		n = 0
	}
	m := zeros(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m
}

// FromInts builds a matrix from int64 rows. All rows must share one length.
// An empty slice yields a 0×0 matrix.
// Complexity: O(r*c).
func FromInts(rows [][]int64) (*Matrix, error) {
	r := len(rows)
	if r == 0 {
		return zeros(0, 0), nil
	}
	c := len(rows[0])
	m := zeros(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, intmatErrorf(opFromInts, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrRagged))
		}
		for j, v := range row {
			m.data[i*c+j].SetInt64(v)
		}
	}

	return m, nil
}

// FromBig builds a matrix from *big.Int rows, copying every entry, so the
// caller may keep mutating its slices afterwards. Nil entries count as zero.
func FromBig(rows [][]*big.Int) (*Matrix, error) {
	r := len(rows)
	if r == 0 {
		return zeros(0, 0), nil
	}
	c := len(rows[0])
	m := zeros(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, intmatErrorf(opFromBig, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrRagged))
		}
		for j, v := range row {
			if v != nil {
				m.data[i*c+j].Set(v)
			}
		}
	}

	return m, nil
}

// FromBigShape is FromBig for callers that need a definite shape even when
// rows is empty (e.g. a 0×d block).
func FromBigShape(rows [][]*big.Int, r, c int) (*Matrix, error) {
	if r < 0 || c < 0 || len(rows) != r {
		return nil, intmatErrorf(opFromBig, fmt.Errorf("%d rows for %dx%d: %w", len(rows), r, c, ErrBadShape))
	}
	if r == 0 {
		return zeros(0, c), nil
	}
	m, err := FromBig(rows)
	if err != nil {
		return nil, err
	}
	if m.c != c {
		return nil, intmatErrorf(opFromBig, fmt.Errorf("%d columns, want %d: %w", m.c, c, ErrDimensionMismatch))
	}

	return m, nil
}

// Row builds a 1×n row vector (a val) from int64 entries.
func Row(vals ...int64) *Matrix {
	m := zeros(1, len(vals))
	for j, v := range vals {
		m.data[j].SetInt64(v)
	}

	return m
}

// Col builds an n×1 column vector (an interval) from int64 entries.
func Col(vals ...int64) *Matrix {
	m := zeros(len(vals), 1)
	for i, v := range vals {
		m.data[i].SetInt64(v)
	}

	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// Dims returns (rows, cols).
func (m *Matrix) Dims() (int, int) { return m.r, m.c }

// At returns a copy of the entry at (i, j).
func (m *Matrix) At(i, j int) (*big.Int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return nil, intmatErrorf(opAt, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.r, m.c, ErrOutOfRange))
	}

	return new(big.Int).Set(m.data[i*m.c+j]), nil
}

// Int64At returns the entry at (i, j) as int64.
func (m *Matrix) Int64At(i, j int) (int64, error) {
	v, err := m.At(i, j)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, intmatErrorf(opAt, fmt.Errorf("(%d,%d)=%s: %w", i, j, v, ErrOverflow))
	}

	return v.Int64(), nil
}

// entry returns the stored pointer without copying; callers must not mutate it.
func (m *Matrix) entry(i, j int) *big.Int {
	return m.data[i*m.c+j]
}

// BigRows returns a deep copy of the entries as row slices.
// Algorithms that need scratch space start from this copy.
func (m *Matrix) BigRows() [][]*big.Int {
	out := make([][]*big.Int, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]*big.Int, m.c)
		for j := 0; j < m.c; j++ {
			row[j] = new(big.Int).Set(m.data[i*m.c+j])
		}
		out[i] = row
	}

	return out
}

// BigRow returns a deep copy of row i.
func (m *Matrix) BigRow(i int) ([]*big.Int, error) {
	if i < 0 || i >= m.r {
		return nil, intmatErrorf(opAt, fmt.Errorf("row %d in %dx%d: %w", i, m.r, m.c, ErrOutOfRange))
	}
	row := make([]*big.Int, m.c)
	for j := range row {
		row[j] = new(big.Int).Set(m.data[i*m.c+j])
	}

	return row, nil
}

// Ints returns the entries as int64 rows, or ErrOverflow if any entry does
// not fit in int64.
func (m *Matrix) Ints() ([][]int64, error) {
	out := make([][]int64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]int64, m.c)
		for j := 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if !v.IsInt64() {
				return nil, intmatErrorf(opInts, fmt.Errorf("(%d,%d)=%s: %w", i, j, v, ErrOverflow))
			}
			row[j] = v.Int64()
		}
		out[i] = row
	}

	return out, nil
}

// Float64s returns the entries converted to float64 in row-major order,
// ready for gonum's mat.NewDense. Huge entries lose precision, which is
// acceptable only on the floating-point side (metrics, weighting).
func (m *Matrix) Float64s() []float64 {
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		f, _ := new(big.Float).SetInt(v).Float64()
		out[i] = f
	}

	return out
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	out := zeros(m.r, m.c)
	for i, v := range m.data {
		out.data[i].Set(v)
	}

	return out
}

// String renders the matrix one row per line, e.g. "[1 0 -4]\n[0 1 4]\n".
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
