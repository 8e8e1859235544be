// SPDX-License-Identifier: MIT
// Package intmat: structural and arithmetic operations.
// Every function allocates a fresh result; operands are never mutated.

package intmat

import (
	"fmt"
	"math/big"
)

// Transpose returns mᵗ.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	out := zeros(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i].Set(m.entry(i, j))
		}
	}

	return out
}

// FlipRows returns m with its row order reversed.
func (m *Matrix) FlipRows() *Matrix {
	out := zeros(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[(m.r-1-i)*m.c+j].Set(m.entry(i, j))
		}
	}

	return out
}

// FlipCols returns m with its column order reversed.
func (m *Matrix) FlipCols() *Matrix {
	out := zeros(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[i*m.c+(m.c-1-j)].Set(m.entry(i, j))
		}
	}

	return out
}

// Neg returns −m.
func (m *Matrix) Neg() *Matrix {
	out := zeros(m.r, m.c)
	for i, v := range m.data {
		out.data[i].Neg(v)
	}

	return out
}

// Mul computes the product a·b.
// Implementation:
//   - Stage 1: Validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: Accumulate each output cell over the shared dimension (i→j→k).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c) big-integer multiplications.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, intmatErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, intmatErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	out := zeros(a.r, b.c)
	prod := new(big.Int) // scratch product
	var i, j, k int
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc := out.data[i*b.c+j]
			for k = 0; k < a.c; k++ {
				prod.Mul(a.entry(i, k), b.entry(k, j))
				acc.Add(acc, prod)
			}
		}
	}

	return out, nil
}

// VStack stacks the operands vertically; all must share a column count.
// Stacking nothing yields a 0×0 matrix.
func VStack(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return zeros(0, 0), nil
	}
	rows := 0
	for i, m := range ms {
		if m == nil {
			return nil, intmatErrorf(opVStack, ErrNilMatrix)
		}
		if m.c != ms[0].c {
			return nil, intmatErrorf(opVStack, fmt.Errorf("block %d has %d columns, want %d: %w", i, m.c, ms[0].c, ErrDimensionMismatch))
		}
		rows += m.r
	}

	out := zeros(rows, ms[0].c)
	offset := 0
	for _, m := range ms {
		for i, v := range m.data {
			out.data[offset+i].Set(v)
		}
		offset += len(m.data)
	}

	return out, nil
}

// HStack concatenates the operands horizontally; all must share a row count.
func HStack(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return zeros(0, 0), nil
	}
	cols := 0
	for i, m := range ms {
		if m == nil {
			return nil, intmatErrorf(opHStack, ErrNilMatrix)
		}
		if m.r != ms[0].r {
			return nil, intmatErrorf(opHStack, fmt.Errorf("block %d has %d rows, want %d: %w", i, m.r, ms[0].r, ErrDimensionMismatch))
		}
		cols += m.c
	}

	out := zeros(ms[0].r, cols)
	offset := 0
	for _, m := range ms {
		for i := 0; i < m.r; i++ {
			for j := 0; j < m.c; j++ {
				out.data[i*cols+offset+j].Set(m.entry(i, j))
			}
		}
		offset += m.c
	}

	return out, nil
}

// Slice returns the half-open block rows [r0, r1) × columns [c0, c1).
func (m *Matrix) Slice(r0, r1, c0, c1 int) (*Matrix, error) {
	if r0 < 0 || r1 < r0 || r1 > m.r || c0 < 0 || c1 < c0 || c1 > m.c {
		return nil, intmatErrorf(opSlice, fmt.Errorf("[%d:%d, %d:%d] of %dx%d: %w", r0, r1, c0, c1, m.r, m.c, ErrOutOfRange))
	}

	out := zeros(r1-r0, c1-c0)
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			out.data[(i-r0)*(c1-c0)+(j-c0)].Set(m.entry(i, j))
		}
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and entries.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i, v := range a.data {
		if v.Cmp(b.data[i]) != 0 {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is zero. Empty matrices are zero.
func (m *Matrix) IsZero() bool {
	for _, v := range m.data {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// RowIsZero reports whether row i is entirely zero. Out-of-range rows report false.
func (m *Matrix) RowIsZero(i int) bool {
	if i < 0 || i >= m.r {
		return false
	}
	for j := 0; j < m.c; j++ {
		if m.entry(i, j).Sign() != 0 {
			return false
		}
	}

	return true
}

// GCD returns the non-negative gcd of all entries (0 for an all-zero matrix).
// A val with GCD > 1 is contorted.
func (m *Matrix) GCD() *big.Int {
	g := new(big.Int)
	abs := new(big.Int)
	for _, v := range m.data {
		abs.Abs(v)
		g.GCD(nil, nil, g, abs)
	}

	return g
}
