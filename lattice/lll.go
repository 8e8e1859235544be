// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
	"math/big"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/osmiumic/temper/intmat"
)

// DefaultDelta is the Lovász parameter used by LLL.
const DefaultDelta = 0.99

// stepsPerVector bounds the number of LLL swaps per basis vector.
const stepsPerVector = 10000

// toVec converts an exact vector for floating-point inner products.
func toVec(v []*big.Int) *mat.VecDense {
	f := make([]float64, len(v))
	for i, x := range v {
		f[i], _ = new(big.Float).SetInt(x).Float64()
	}

	return mat.NewVecDense(len(f), f)
}

// Norm returns the weighted squared norm vᵗ·W·v.
func Norm(v []*big.Int, w mat.Matrix) float64 {
	x := toVec(v)

	return mat.Inner(x, w, x)
}

// gramSchmidt returns the μ coefficients and squared norms B of the
// W-orthogonalized basis.
func gramSchmidt(b [][]*big.Int, w mat.Matrix) (mu [][]float64, norms []float64) {
	n := len(b)
	vecs := make([]*mat.VecDense, n)
	star := make([]*mat.VecDense, n)
	mu = make([][]float64, n)
	norms = make([]float64, n)
	for i := range b {
		vecs[i] = toVec(b[i])
		mu[i] = make([]float64, n)
		s := mat.VecDenseCopyOf(vecs[i])
		for j := 0; j < i; j++ {
			if norms[j] == 0 {
				continue
			}
			mu[i][j] = mat.Inner(vecs[i], w, star[j]) / norms[j]
			s.AddScaledVec(s, -mu[i][j], star[j])
		}
		star[i] = s
		norms[i] = mat.Inner(s, w, s)
	}

	return mu, norms
}

// Reduce LLL-reduces the basis vectors (one per slice) under ⟨u,v⟩ = uᵗWv
// and returns a fresh reduced basis of the same lattice.
//
// Implementation:
//   - Stage 1: Validate delta ∈ (1/4, 1], W of size d×d, equal vector lengths.
//   - Stage 2: Gram–Schmidt; zero-norm vectors mean a dependent basis.
//   - Stage 3: Size-reduce b_k against b_{k−1}..b_0 with exact integer steps,
//     then test the Lovász condition B_k ≥ (δ − μ²_{k,k−1})·B_{k−1};
//     swap and step back when it fails.
//
// Errors: ErrDimensionMismatch, ErrBadDelta, ErrDependent, ErrNoConvergence.
// Complexity: polynomial in the basis size and bit length; each Gram–Schmidt
// refresh costs O(n²·d²) with a dense W.
func Reduce(basis [][]*big.Int, delta float64, w mat.Matrix) ([][]*big.Int, error) {
	// Stage 1: validation
	if !(delta > 0.25 && delta <= 1) {
		return nil, latticeErrorf(opReduce, fmt.Errorf("delta=%g: %w", delta, ErrBadDelta))
	}
	n := len(basis)
	if n == 0 {
		return [][]*big.Int{}, nil
	}
	d := len(basis[0])
	if w == nil {
		return nil, latticeErrorf(opReduce, ErrNilMatrix)
	}
	if wr, wc := w.Dims(); wr != d || wc != d {
		return nil, latticeErrorf(opReduce, fmt.Errorf("W %dx%d for vectors of length %d: %w", wr, wc, d, ErrDimensionMismatch))
	}
	b := make([][]*big.Int, n)
	for i, v := range basis {
		if len(v) != d {
			return nil, latticeErrorf(opReduce, fmt.Errorf("vector %d has length %d, want %d: %w", i, len(v), d, ErrDimensionMismatch))
		}
		b[i] = make([]*big.Int, d)
		for j, x := range v {
			b[i][j] = new(big.Int).Set(x)
		}
	}

	// Stage 2: initial orthogonalization
	mu, norms := gramSchmidt(b, w)
	for i, bn := range norms {
		if bn <= 0 {
			return nil, latticeErrorf(opReduce, fmt.Errorf("vector %d: %w", i, ErrDependent))
		}
	}

	// Stage 3: main loop
	q := new(big.Int)
	tmp := new(big.Int)
	k := 1
	for steps := 0; k < n; steps++ {
		if steps > stepsPerVector*n {
			return nil, latticeErrorf(opReduce, fmt.Errorf("%d vectors: %w", n, ErrNoConvergence))
		}
		for j := k - 1; j >= 0; j-- {
			r := math.Round(mu[k][j])
			if r == 0 {
				continue
			}
			new(big.Float).SetFloat64(r).Int(q)
			for i := range b[k] {
				tmp.Mul(q, b[j][i])
				b[k][i].Sub(b[k][i], tmp)
			}
			// μ_k,i −= r·μ_j,i for i < j, and μ_k,j −= r
			for i := 0; i < j; i++ {
				mu[k][i] -= r * mu[j][i]
			}
			mu[k][j] -= r
		}

		if norms[k] >= (delta-mu[k][k-1]*mu[k][k-1])*norms[k-1] {
			k++
			continue
		}
		b[k], b[k-1] = b[k-1], b[k]
		mu, norms = gramSchmidt(b, w)
		k = max(k-1, 1)
	}

	return b, nil
}

// LLL reduces the comma basis m (commas as columns) with Lovász parameter
// DefaultDelta and returns the reduced commas as columns, sorted ascending
// by weighted complexity vᵗ·W·v.
func LLL(m *intmat.Matrix, w mat.Matrix) (*intmat.Matrix, error) {
	if m == nil {
		return nil, latticeErrorf(opLLL, ErrNilMatrix)
	}
	d, n := m.Dims()

	reduced, err := Reduce(m.Transpose().BigRows(), DefaultDelta, w)
	if err != nil {
		return nil, latticeErrorf(opLLL, err)
	}

	type scored struct {
		v    []*big.Int
		norm float64
	}
	list := make([]scored, len(reduced))
	for i, v := range reduced {
		list[i] = scored{v: v, norm: Norm(v, w)}
	}
	slices.SortStableFunc(list, func(a, b scored) int {
		switch {
		case a.norm < b.norm:
			return -1
		case a.norm > b.norm:
			return 1
		default:
			return 0
		}
	})

	rows := make([][]*big.Int, len(list))
	for i, s := range list {
		rows[i] = s.v
	}
	out, err := intmat.FromBigShape(rows, n, d)
	if err != nil {
		return nil, latticeErrorf(opLLL, err)
	}

	return out.Transpose(), nil
}
