// SPDX-License-Identifier: MIT

// Package metrics scores a temperament, given as a (mapping, subgroup) pair,
// with Tenney-weighted error, complexity and logflat badness.
//
// With J the log-subgroup vector and W = diag(1/J):
//
//	error      = sqrt(mean((e·W)²))          e: least-squares residual in cents
//	complexity = sqrt(det((M·W)(M·W)ᵗ) / d)  weighted Gram volume
//	badness    = error · complexity^(d/(d−r))
//
// The badness exponent follows Bugeaud & Laurent, "On transfer inequalities
// in Diophantine approximation, II" (Math. Z. 265, 2010), corollary 2, with
// the error·complexity product standing in for |y ∧ X|.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/subgroup"
	"github.com/osmiumic/temper/tuning"
	"github.com/osmiumic/temper/weighting"
)

var (
	// ErrNilMatrix indicates that a nil mapping was passed.
	ErrNilMatrix = errors.New("metrics: nil mapping")

	// ErrDimensionMismatch indicates a mapping whose width differs from the subgroup.
	ErrDimensionMismatch = errors.New("metrics: dimension mismatch")

	// ErrNoCodimension indicates r == d, where badness is undefined.
	ErrNoCodimension = errors.New("metrics: mapping has no codimension")
)

// Measures bundles the three scores of a temperament.
type Measures struct {
	Badness    float64
	Complexity float64
	Error      float64 // cents
}

// scheme is the weighting every metric uses.
const scheme = weighting.Tenney

func validate(tag string, m *intmat.Matrix, s subgroup.Subgroup) error {
	if m == nil {
		return fmt.Errorf("%s: %w", tag, ErrNilMatrix)
	}
	if m.Cols() != s.Len() || m.Rows() == 0 {
		return fmt.Errorf("%s: %dx%d mapping over %s: %w", tag, m.Rows(), m.Cols(), s, ErrDimensionMismatch)
	}

	return nil
}

// Error returns the Tenney-weighted RMS error of the optimal tuning of m.
func Error(m *intmat.Matrix, s subgroup.Subgroup) (float64, error) {
	if err := validate("Error", m, s); err != nil {
		return 0, err
	}
	logs := s.Logs()
	w, err := scheme.Weights(logs)
	if err != nil {
		return 0, fmt.Errorf("Error: %w", err)
	}
	tun, err := tuning.LeastSquares(m, logs, scheme)
	if err != nil {
		return 0, fmt.Errorf("Error: %w", err)
	}

	var sum float64
	for i, e := range tun.Residual {
		we := e * w[i]
		sum += we * we
	}

	return math.Sqrt(sum / float64(len(logs))), nil
}

// Complexity returns sqrt(det((M·W)(M·W)ᵗ)/d), the weighted volume spanned
// by the vals of m.
func Complexity(m *intmat.Matrix, s subgroup.Subgroup) (float64, error) {
	if err := validate("Complexity", m, s); err != nil {
		return 0, err
	}
	r, d := m.Dims()
	w, err := scheme.Matrix(s.Logs())
	if err != nil {
		return 0, fmt.Errorf("Complexity: %w", err)
	}

	var mw, gram mat.Dense
	mw.Mul(mat.NewDense(r, d, m.Float64s()), w)
	gram.Mul(&mw, mw.T())

	det := mat.Det(&gram)
	if det < 0 { // rounding on a singular Gram matrix
		det = 0
	}

	return math.Sqrt(det / float64(d)), nil
}

// Measure returns badness, complexity and error of m over s.
func Measure(m *intmat.Matrix, s subgroup.Subgroup) (Measures, error) {
	if err := validate("Measure", m, s); err != nil {
		return Measures{}, err
	}
	r, d := m.Dims()
	if r >= d {
		return Measures{}, fmt.Errorf("Measure: %dx%d: %w", r, d, ErrNoCodimension)
	}

	c, err := Complexity(m, s)
	if err != nil {
		return Measures{}, err
	}
	e, err := Error(m, s)
	if err != nil {
		return Measures{}, err
	}

	return Measures{
		Badness:    e * math.Pow(c, float64(d)/float64(d-r)),
		Complexity: c,
		Error:      e,
	}, nil
}
