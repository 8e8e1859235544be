// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"gonum.org/v1/gonum/mat"

	"github.com/osmiumic/temper/intmat"
)

// Simplify returns, for every interval (column of intervals), a
// representative of the same tempered class with a locally minimal weighted
// norm: commas (columns of commas) are subtracted or added one at a time
// whenever that strictly lowers vᵗ·W·v, until no step helps.
//
// This is a local search. The result depends on the comma order and is not
// guaranteed to be globally minimal; an LLL-reduced basis works best.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Simplify(intervals, commas *intmat.Matrix, w mat.Matrix) (*intmat.Matrix, error) {
	if intervals == nil || commas == nil || w == nil {
		return nil, latticeErrorf(opSimplify, ErrNilMatrix)
	}
	d, m := intervals.Dims()
	if commas.Rows() != d {
		return nil, latticeErrorf(opSimplify, fmt.Errorf("intervals %dx%d, commas %dx%d: %w", d, m, commas.Rows(), commas.Cols(), ErrDimensionMismatch))
	}
	if wr, wc := w.Dims(); wr != d || wc != d {
		return nil, latticeErrorf(opSimplify, fmt.Errorf("W %dx%d for dimension %d: %w", wr, wc, d, ErrDimensionMismatch))
	}

	vs := intervals.Transpose().BigRows()
	cs := commas.Transpose().BigRows()
	for i, v := range vs {
		vs[i] = descend(v, cs, w)
	}

	out, err := intmat.FromBigShape(vs, m, d)
	if err != nil {
		return nil, latticeErrorf(opSimplify, err)
	}

	return out.Transpose(), nil
}

// descend runs the comma walk for a single interval.
func descend(v []*big.Int, commas [][]*big.Int, w mat.Matrix) []*big.Int {
	best := Norm(v, w)
	for improved := true; improved; {
		improved = false
		for _, c := range commas {
			for _, sign := range [2]int{-1, 1} {
				cand := step(v, c, sign)
				if p := Norm(cand, w); p < best {
					v, best = cand, p
					improved = true
					break
				}
			}
		}
	}

	return v
}

// step returns v + sign·c.
func step(v, c []*big.Int, sign int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i := range v {
		if sign < 0 {
			out[i] = new(big.Int).Sub(v[i], c[i])
		} else {
			out[i] = new(big.Int).Add(v[i], c[i])
		}
	}

	return out
}
