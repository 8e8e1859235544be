// SPDX-License-Identifier: MIT
// Package normalform: Hermite normal form with unimodular transform.

package normalform

import (
	"math/big"

	"github.com/osmiumic/temper/intmat"
)

// Option configures HNF.
type Option func(*options)

// options holds HNF switches; the zero value keeps zero rows.
type options struct {
	removeZeros bool
}

// WithRemoveZeros strips the all-zero rows from the returned normal form.
// The transform, when requested, always keeps its full square shape.
func WithRemoveZeros() Option {
	return func(o *options) { o.removeZeros = true }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// HNF returns the Hermite normal form of m.
// See HNFWithTransform for the algorithm and conventions.
func HNF(m *intmat.Matrix, opts ...Option) (*intmat.Matrix, error) {
	h, _, err := HNFWithTransform(m, opts...)

	return h, err
}

// HNFWithTransform returns the Hermite normal form H of m together with a
// unimodular U such that U·m = H (before any zero-row removal).
//
// Implementation:
//   - Stage 1: Copy m into scratch rows; start U as the identity.
//   - Stage 2: Column by column, fold every entry below the current pivot
//     row into the pivot with an extended-gcd 2×2 unimodular step.
//   - Stage 3: Make the pivot positive and reduce the entries above it
//     into [0, pivot) with floor division.
//   - Stage 4: Optionally drop trailing zero rows.
//
// Every row operation is applied to m and U alike, so U stays unimodular
// (each step has determinant ±1).
//
// Errors: ErrNilMatrix.
// Complexity: O(r²·c) big-integer row operations; entry sizes are unbounded.
func HNFWithTransform(m *intmat.Matrix, opts ...Option) (*intmat.Matrix, *intmat.Matrix, error) {
	if m == nil {
		return nil, nil, normalformErrorf(opHNF, ErrNilMatrix)
	}
	o := gatherOptions(opts)

	// Stage 1: scratch copies
	rows, cols := m.Dims()
	a := m.BigRows()
	u := intmat.Identity(rows).BigRows()

	// Stage 2+3: elimination
	rank := echelonize(a, u, cols)

	// Stage 4: finalize
	keep := rows
	if o.removeZeros {
		keep = rank
	}
	h, err := intmat.FromBigShape(a[:keep], keep, cols)
	if err != nil {
		return nil, nil, normalformErrorf(opHNF, err)
	}
	t, err := intmat.FromBigShape(u, rows, rows)
	if err != nil {
		return nil, nil, normalformErrorf(opHNF, err)
	}

	return h, t, nil
}

// echelonize brings a into Hermite normal form in place, mirroring every
// row operation onto u, and returns the number of nonzero rows.
func echelonize(a, u [][]*big.Int, cols int) int {
	rows := len(a)
	var (
		g, s, t = new(big.Int), new(big.Int), new(big.Int) // gcd and Bézout coefficients
		p, q    = new(big.Int), new(big.Int)               // cofactors x/g and y/g
		f       = new(big.Int)                             // reduction factor
	)

	pivot := 0
	for col := 0; col < cols && pivot < rows; col++ {
		// fold rows below the pivot into it
		for i := pivot + 1; i < rows; i++ {
			y := a[i][col]
			if y.Sign() == 0 {
				continue
			}
			x := a[pivot][col]
			if x.Sign() == 0 {
				a[pivot], a[i] = a[i], a[pivot]
				u[pivot], u[i] = u[i], u[pivot]
				continue
			}
			g.GCD(s, t, x, y) // s·x + t·y = g > 0
			p.Quo(x, g)
			q.Quo(y, g)
			combine(a[pivot], a[i], s, t, q, p)
			combine(u[pivot], u[i], s, t, q, p)
		}

		if a[pivot][col].Sign() == 0 {
			continue // no pivot in this column
		}
		if a[pivot][col].Sign() < 0 {
			negate(a[pivot])
			negate(u[pivot])
		}

		// reduce entries above the pivot into [0, pivot)
		piv := a[pivot][col]
		for k := 0; k < pivot; k++ {
			f.Div(a[k][col], piv) // Euclidean, floor for piv > 0
			if f.Sign() == 0 {
				continue
			}
			subMul(a[k], a[pivot], f)
			subMul(u[k], u[pivot], f)
		}
		pivot++
	}

	return pivot
}

// combine replaces (x, y) by (s·x + t·y, p·y − q·x); the 2×2 step
// [[s, t], [−q, p]] has determinant (s·x₀ + t·y₀)/g = 1.
func combine(x, y []*big.Int, s, t, q, p *big.Int) {
	a, b := new(big.Int), new(big.Int)
	for j := range x {
		a.Mul(s, x[j])
		b.Mul(t, y[j])
		nx := new(big.Int).Add(a, b)

		a.Mul(p, y[j])
		b.Mul(q, x[j])
		y[j].Sub(a, b)
		x[j] = nx
	}
}

// subMul performs dst -= f·src.
func subMul(dst, src []*big.Int, f *big.Int) {
	tmp := new(big.Int)
	for j := range dst {
		tmp.Mul(f, src[j])
		dst[j].Sub(dst[j], tmp)
	}
}

func negate(row []*big.Int) {
	for _, v := range row {
		v.Neg(v)
	}
}

// Rank returns the number of nonzero rows of HNF(m).
func Rank(m *intmat.Matrix) (int, error) {
	if m == nil {
		return 0, normalformErrorf(opRank, ErrNilMatrix)
	}
	a := m.BigRows()
	u := make([][]*big.Int, len(a)) // transform is not needed
	for i := range u {
		u[i] = []*big.Int{}
	}

	return echelonize(a, u, m.Cols()), nil
}
