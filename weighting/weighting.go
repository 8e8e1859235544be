// SPDX-License-Identifier: MIT

// Package weighting enumerates the weighting schemes used to measure
// intervals, vals and tunings, each with an explicit weight-matrix
// constructor over a log-subgroup vector.
package weighting

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrBadLogs indicates an empty log-subgroup vector or a zero/non-finite entry.
var ErrBadLogs = errors.New("weighting: invalid log-subgroup vector")

// ErrUnknownScheme indicates a Scheme value outside the enumeration.
var ErrUnknownScheme = errors.New("weighting: unknown scheme")

// Scheme is a closed enumeration of weighting schemes.
type Scheme int

const (
	// Tenney weights coordinate i by 1/logs[i]: harmonic complexity grows
	// with the size of the prime.
	Tenney Scheme = iota

	// Frobenius leaves every coordinate unweighted.
	Frobenius
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case Tenney:
		return "tenney"
	case Frobenius:
		return "frobenius"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// Weights returns the diagonal of the weight matrix for logs.
func (s Scheme) Weights(logs []float64) ([]float64, error) {
	if len(logs) == 0 {
		return nil, fmt.Errorf("%s: %w", s, ErrBadLogs)
	}
	out := make([]float64, len(logs))
	for i, l := range logs {
		if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("%s: logs[%d]=%g: %w", s, i, l, ErrBadLogs)
		}
		switch s {
		case Tenney:
			out[i] = 1 / l
		case Frobenius:
			out[i] = 1
		default:
			return nil, ErrUnknownScheme
		}
	}

	return out, nil
}

// Matrix returns the d×d diagonal weight matrix W for logs.
func (s Scheme) Matrix(logs []float64) (*mat.DiagDense, error) {
	w, err := s.Weights(logs)
	if err != nil {
		return nil, err
	}

	return mat.NewDiagDense(len(w), w), nil
}
