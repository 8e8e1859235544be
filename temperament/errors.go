// SPDX-License-Identifier: MIT
// Package temperament: sentinel error set.

package temperament

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil mapping or comma basis was passed.
	ErrNilMatrix = errors.New("temperament: nil matrix")

	// ErrDimensionMismatch indicates a matrix whose subgroup side differs
	// from the subgroup length.
	ErrDimensionMismatch = errors.New("temperament: dimension mismatch")

	// ErrRankDeficient indicates dependent vals or dependent commas.
	ErrRankDeficient = errors.New("temperament: matrix is rank deficient")

	// ErrTrivial indicates a rank-zero temperament (every interval tempered out).
	ErrTrivial = errors.New("temperament: rank-zero temperament")
)

const (
	opFromMapping   = "FromMapping"
	opFromCommas    = "FromCommas"
	opCommas        = "Commas"
	opReducedCommas = "ReducedCommas"
	opGenerators    = "Generators"
	opMeasures      = "Measures"
	opTuning        = "Tuning"
	opSimplify      = "Simplify"
)

func temperamentErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
