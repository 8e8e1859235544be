// SPDX-License-Identifier: MIT
// Package normalform: saturation, factor order and canonical forms.

package normalform

import (
	"fmt"
	"math/big"

	"github.com/osmiumic/temper/intmat"
)

// leadingBlock returns the leading r×r block of HNF(mᵗ) for an r×d matrix m,
// or ErrRankDeficient when m cannot have full row rank.
func leadingBlock(tag string, m *intmat.Matrix) (*intmat.Matrix, error) {
	r, d := m.Dims()
	if r > d {
		return nil, normalformErrorf(tag, fmt.Errorf("%dx%d: %w", r, d, ErrRankDeficient))
	}
	h, err := HNF(m.Transpose())
	if err != nil {
		return nil, normalformErrorf(tag, err)
	}
	block, err := h.Slice(0, r, 0, r)
	if err != nil {
		return nil, normalformErrorf(tag, err)
	}

	return block, nil
}

// DefactoredHNF returns the saturated Hermite normal form of a full-row-rank
// matrix m: the HNF of the unique saturated lattice containing m's rows with
// the same rational span.
//
// Implementation (Pernet & Stein, "Fast computation of HNF of random integer
// matrices", §8):
//   - Stage 1: H = leading r×r block of HNF(mᵗ); then m = Hᵗ·Y with Y integral.
//   - Stage 2: Solve Hᵗ·Y = m exactly by forward substitution over big.Rat.
//   - Stage 3: Assert Y is integral and return HNF(Y).
//
// Errors: ErrNilMatrix, ErrRankDeficient, ErrNotIntegral (invariant).
// Complexity: one HNF of mᵗ, O(r²·d) rational operations, one HNF of Y.
func DefactoredHNF(m *intmat.Matrix) (*intmat.Matrix, error) {
	if m == nil {
		return nil, normalformErrorf(opDefactor, ErrNilMatrix)
	}
	r, d := m.Dims()

	// Stage 1: leading block, lower triangular once transposed
	block, err := leadingBlock(opDefactor, m)
	if err != nil {
		return nil, err
	}
	l := block.Transpose().BigRows()
	for i := 0; i < r; i++ {
		if l[i][i].Sign() == 0 {
			return nil, normalformErrorf(opDefactor, fmt.Errorf("%dx%d: %w", r, d, ErrRankDeficient))
		}
	}

	// Stage 2: forward substitution, row by row
	src := m.BigRows()
	y := make([][]*big.Int, r)
	tmp := new(big.Rat)
	for i := 0; i < r; i++ {
		y[i] = make([]*big.Int, d)
		for j := 0; j < d; j++ {
			acc := new(big.Rat).SetInt(src[i][j])
			for k := 0; k < i; k++ {
				tmp.SetInt(new(big.Int).Mul(l[i][k], y[k][j]))
				acc.Sub(acc, tmp)
			}
			acc.Quo(acc, new(big.Rat).SetInt(l[i][i]))

			// Stage 3: exactness
			if !acc.IsInt() {
				return nil, normalformErrorf(opDefactor, fmt.Errorf("%dx%d entry (%d,%d)=%s: %w", r, d, i, j, acc.RatString(), ErrNotIntegral))
			}
			y[i][j] = new(big.Int).Set(acc.Num())
		}
	}

	ym, err := intmat.FromBigShape(y, r, d)
	if err != nil {
		return nil, normalformErrorf(opDefactor, err)
	}
	h, err := HNF(ym)
	if err != nil {
		return nil, normalformErrorf(opDefactor, err)
	}

	return h, nil
}

// FactorOrder returns the determinant of the leading r×r block of HNF(mᵗ),
// i.e. the index of m's row lattice in its saturation. It is 1 exactly when
// m is saturated (not torsional / contorted).
func FactorOrder(m *intmat.Matrix) (*big.Int, error) {
	if m == nil {
		return nil, normalformErrorf(opFactorOrder, ErrNilMatrix)
	}
	block, err := leadingBlock(opFactorOrder, m)
	if err != nil {
		return nil, err
	}
	det, err := Determinant(block.Transpose())
	if err != nil {
		return nil, normalformErrorf(opFactorOrder, err)
	}

	return det, nil
}

// Canonical returns the canonical form that identifies a temperament.
// Mappings (rows ≤ cols) map to their defactored HNF. Comma bases
// (rows > cols, commas as columns) are sandwiched between antitransposes so
// the normal form is taken on the dual side:
//
//	Canonical(C) = Antitranspose(DefactoredHNF(Antitranspose(C)))
//
// Canonical is idempotent.
func Canonical(m *intmat.Matrix) (*intmat.Matrix, error) {
	if m == nil {
		return nil, normalformErrorf(opCanonical, ErrNilMatrix)
	}
	if m.Rows() > m.Cols() {
		h, err := DefactoredHNF(Antitranspose(m))
		if err != nil {
			return nil, normalformErrorf(opCanonical, err)
		}
		return Antitranspose(h), nil
	}
	h, err := DefactoredHNF(m)
	if err != nil {
		return nil, normalformErrorf(opCanonical, err)
	}

	return h, nil
}
