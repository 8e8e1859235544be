// SPDX-License-Identifier: MIT
// Package normalform: kernel, cokernel and antitranspose.

package normalform

import (
	"github.com/osmiumic/temper/intmat"
)

// Kernel returns an integer basis K of the right nullspace of m (m·K = 0),
// one basis vector per column. For a mapping this is a comma basis.
//
// Implementation:
//   - Stage 1: Build [mᵗ | I_d] (d × (r+d)).
//   - Stage 2: Take its HNF; rows whose first r entries vanish carry, in
//     their identity block, vectors v with v·mᵗ = 0.
//   - Stage 3: Return those identity-block rows transposed (d × (d − rank)).
//
// The HNF of the identity half makes the basis saturated: every integer
// vector in the nullspace is an integer combination of the columns of K.
//
// Errors: ErrNilMatrix.
// Complexity: one HNF of a d × (r+d) matrix.
func Kernel(m *intmat.Matrix) (*intmat.Matrix, error) {
	if m == nil {
		return nil, normalformErrorf(opKernel, ErrNilMatrix)
	}
	r, d := m.Dims()

	// Stage 1: adjoin identity
	aug, err := intmat.HStack(m.Transpose(), intmat.Identity(d))
	if err != nil {
		return nil, normalformErrorf(opKernel, err)
	}

	// Stage 2: HNF
	h, err := HNF(aug)
	if err != nil {
		return nil, normalformErrorf(opKernel, err)
	}

	// first row whose mapping block is zero; equals rank(m)
	start := 0
	for start < d {
		head, err := h.Slice(start, start+1, 0, r)
		if err != nil {
			return nil, normalformErrorf(opKernel, err)
		}
		if head.IsZero() {
			break
		}
		start++
	}

	// Stage 3: slice and transpose
	k, err := h.Slice(start, d, r, r+d)
	if err != nil {
		return nil, normalformErrorf(opKernel, err)
	}

	return k.Transpose(), nil
}

// Cokernel returns a basis of the left nullspace of m, one vector per row
// (Cokernel(m)·m = 0). For a comma basis this is the mapping.
func Cokernel(m *intmat.Matrix) (*intmat.Matrix, error) {
	if m == nil {
		return nil, normalformErrorf(opCokernel, ErrNilMatrix)
	}
	k, err := Kernel(m.Transpose())
	if err != nil {
		return nil, normalformErrorf(opCokernel, err)
	}

	return k.Transpose(), nil
}

// Antitranspose flips m along its anti-diagonal: row and column order of mᵗ
// are both reversed. It carries the mapping/comma-basis duality used by
// Canonical.
func Antitranspose(m *intmat.Matrix) *intmat.Matrix {
	return m.Transpose().FlipRows().FlipCols()
}
