// SPDX-License-Identifier: MIT
// Package normalform: exact integer determinant.

package normalform

import (
	"fmt"
	"math/big"

	"github.com/osmiumic/temper/intmat"
)

// Determinant computes det(m) exactly with Bareiss fraction-free elimination.
//
// Implementation:
//   - Stage 1: Validate squareness; 0×0 has determinant 1.
//   - Stage 2: For each step i, if the pivot is zero swap in a lower row
//     with a nonzero entry in column i (flipping the sign); if none exists
//     the determinant is 0.
//   - Stage 3: Update the trailing block with
//     a[j][k] = (a[j][k]·a[i][i] − a[j][i]·a[i][k]) / prev, asserting the
//     division is exact.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInexactDivision (invariant).
// Complexity: O(n³) big-integer operations; intermediate entries stay
// bounded by minors of m.
func Determinant(m *intmat.Matrix) (*big.Int, error) {
	if m == nil {
		return nil, normalformErrorf(opDeterminant, ErrNilMatrix)
	}
	n, c := m.Dims()
	if n != c {
		return nil, normalformErrorf(opDeterminant, fmt.Errorf("%dx%d: %w", n, c, ErrNonSquare))
	}
	if n == 0 {
		return big.NewInt(1), nil
	}

	a := m.BigRows()
	sign := 1
	prev := big.NewInt(1)
	var (
		lhs, rhs = new(big.Int), new(big.Int)
		rem      = new(big.Int)
	)
	for i := 0; i < n-1; i++ {
		// Stage 2: pivot search
		if a[i][i].Sign() == 0 {
			swap := -1
			for j := i + 1; j < n; j++ {
				if a[j][i].Sign() != 0 {
					swap = j
					break
				}
			}
			if swap < 0 {
				return new(big.Int), nil
			}
			a[i], a[swap] = a[swap], a[i]
			sign = -sign
		}

		// Stage 3: fraction-free update
		for j := i + 1; j < n; j++ {
			for k := i + 1; k < n; k++ {
				lhs.Mul(a[j][k], a[i][i])
				rhs.Mul(a[j][i], a[i][k])
				lhs.Sub(lhs, rhs)
				q := new(big.Int)
				q.QuoRem(lhs, prev, rem)
				if rem.Sign() != 0 {
					return nil, normalformErrorf(opDeterminant, fmt.Errorf("%dx%d step %d: %w", n, n, i, ErrInexactDivision))
				}
				a[j][k] = q
			}
		}
		prev = a[i][i]
	}

	det := new(big.Int).Set(a[n-1][n-1])
	if sign < 0 {
		det.Neg(det)
	}

	return det, nil
}
