// SPDX-License-Identifier: MIT

package diophantine

import (
	"fmt"

	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/normalform"
)

// Solve returns an integer X with A·X = B, where A is r×d and B is r×k.
//
// Implementation:
//   - Stage 1: Build aug = [[Aᵗ, 0], [Bᵗ, I_k]] of shape (d+k) × (r+k).
//   - Stage 2: H, U = HNF(aug) with transform.
//   - Stage 3: With rank = number of nonzero rows of H, the k rows just above
//     the zero rows must read [0 | I_k]; otherwise the system is inconsistent.
//   - Stage 4: X = −(first d columns of those U rows)ᵗ; verify A·X = B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnsolvable.
// Complexity: one HNF of a (d+k) × (r+k) matrix plus one verification product.
func Solve(a, b *intmat.Matrix) (*intmat.Matrix, error) {
	if a == nil || b == nil {
		return nil, diophantineErrorf(opSolve, ErrNilMatrix)
	}
	r, d := a.Dims()
	if b.Rows() != r {
		return nil, diophantineErrorf(opSolve, fmt.Errorf("A %dx%d, B %dx%d: %w", r, d, b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	k := b.Cols()

	// Stage 1: augmented block
	zero, err := intmat.New(d, k)
	if err != nil {
		return nil, diophantineErrorf(opSolve, err)
	}
	top, err := intmat.HStack(a.Transpose(), zero)
	if err != nil {
		return nil, diophantineErrorf(opSolve, err)
	}
	bottom, err := intmat.HStack(b.Transpose(), intmat.Identity(k))
	if err != nil {
		return nil, diophantineErrorf(opSolve, err)
	}
	aug, err := intmat.VStack(top, bottom)
	if err != nil {
		return nil, diophantineErrorf(opSolve, err)
	}

	// Stage 2: normal form with transform
	h, u, err := normalform.HNFWithTransform(aug)
	if err != nil {
		return nil, diophantineErrorf(opSolve, err)
	}

	// Stage 3: locate the [0 | I_k] block
	rank := 0
	for rank < h.Rows() && !h.RowIsZero(rank) {
		rank++
	}
	p1 := rank - k
	if p1 < 0 {
		return nil, diophantineErrorf(opSolve, fmt.Errorf("A %dx%d, B %dx%d: %w", r, d, r, k, ErrUnsolvable))
	}
	block, err := h.Slice(p1, rank, 0, r+k)
	if err != nil {
		return nil, diophantineErrorf(opSolve, err)
	}
	want, err := intmat.HStack(mustZero(k, r), intmat.Identity(k))
	if err != nil {
		return nil, diophantineErrorf(opSolve, err)
	}
	if !intmat.Equal(block, want) {
		return nil, diophantineErrorf(opSolve, fmt.Errorf("A %dx%d, B %dx%d: %w", r, d, r, k, ErrUnsolvable))
	}

	// Stage 4: extract and verify
	rows, err := u.Slice(p1, rank, 0, d)
	if err != nil {
		return nil, diophantineErrorf(opSolve, err)
	}
	x := rows.Neg().Transpose()

	ax, err := intmat.Mul(a, x)
	if err != nil {
		return nil, diophantineErrorf(opSolve, err)
	}
	if !intmat.Equal(ax, b) {
		return nil, diophantineErrorf(opSolve, fmt.Errorf("A %dx%d, B %dx%d: verification failed: %w", r, d, r, k, ErrUnsolvable))
	}

	return x, nil
}

// mustZero returns an r×c zero matrix; r and c are never negative here.
func mustZero(r, c int) *intmat.Matrix {
	z, _ := intmat.New(r, c)

	return z
}

// Preimage returns G with M·G = I for a full-row-rank, saturated mapping M
// (r×d → G is d×r). The columns of G are generator intervals of the
// temperament.
func Preimage(m *intmat.Matrix) (*intmat.Matrix, error) {
	if m == nil {
		return nil, diophantineErrorf(opPreimage, ErrNilMatrix)
	}
	g, err := Solve(m, intmat.Identity(m.Rows()))
	if err != nil {
		return nil, diophantineErrorf(opPreimage, err)
	}

	return g, nil
}
