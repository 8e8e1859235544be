// SPDX-License-Identifier: MIT

// Package tuning finds the weighted least-squares optimal tuning of a
// mapping: the generator sizes g (cents) minimizing ‖(g·M − J)·W‖₂, where J
// is the just tuning of the subgroup in cents and W the weight matrix of
// the chosen scheme.
package tuning

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/weighting"
)

// CentsPerOctave scales base-2 logs to cents.
const CentsPerOctave = 1200.0

var (
	// ErrNilMatrix indicates that a nil mapping was passed.
	ErrNilMatrix = errors.New("tuning: nil mapping")

	// ErrDimensionMismatch indicates a mapping whose column count differs from len(logs).
	ErrDimensionMismatch = errors.New("tuning: dimension mismatch")

	// ErrSolve indicates the least-squares system could not be solved
	// (rank-deficient mapping).
	ErrSolve = errors.New("tuning: least-squares solve failed")
)

// Tuning is the result of LeastSquares. All values are in cents.
type Tuning struct {
	Generators []float64 // one size per mapping row
	Tempered   []float64 // g·M, the tempered size of each subgroup element
	Residual   []float64 // g·M − J, unweighted
}

// LeastSquares solves min ‖(g·M − J)·W‖₂ with J = 1200·logs.
//
// Implementation:
//   - Stage 1: Build M (r×d) and W (d×d) as gonum matrices.
//   - Stage 2: Solve (M·W)ᵗ·gᵗ ≈ (J·W)ᵗ; gonum uses QR for the d > r case.
//   - Stage 3: Report generators, tempered sizes and the residual.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, weighting.ErrBadLogs, ErrSolve.
// Complexity: O(d·r²).
func LeastSquares(m *intmat.Matrix, logs []float64, scheme weighting.Scheme) (Tuning, error) {
	if m == nil {
		return Tuning{}, ErrNilMatrix
	}
	r, d := m.Dims()
	if d != len(logs) || r == 0 {
		return Tuning{}, fmt.Errorf("tuning: %dx%d mapping over %d logs: %w", r, d, len(logs), ErrDimensionMismatch)
	}
	w, err := scheme.Matrix(logs)
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning: %w", err)
	}

	// Stage 1: operands
	mm := mat.NewDense(r, d, m.Float64s())
	just := make([]float64, d)
	for i, l := range logs {
		just[i] = CentsPerOctave * l
	}
	j := mat.NewDense(1, d, just)

	var mw, jw mat.Dense
	mw.Mul(mm, w)
	jw.Mul(j, w)

	// Stage 2: weighted least squares
	var g mat.Dense
	if err := g.Solve(mw.T(), jw.T()); err != nil {
		return Tuning{}, fmt.Errorf("tuning: %dx%d: %v: %w", r, d, err, ErrSolve)
	}

	// Stage 3: tempered sizes and residual
	var tempered mat.Dense
	tempered.Mul(g.T(), mm)

	out := Tuning{
		Generators: mat.Col(nil, 0, &g),
		Tempered:   mat.Row(nil, 0, &tempered),
		Residual:   make([]float64, d),
	}
	for i := range out.Residual {
		out.Residual[i] = out.Tempered[i] - just[i]
	}

	return out, nil
}
