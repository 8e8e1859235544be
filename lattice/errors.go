// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set.

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("lattice: nil matrix")

	// ErrDimensionMismatch indicates a weight matrix or operand of the wrong size.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

	// ErrBadDelta indicates a Lovász parameter outside (1/4, 1].
	ErrBadDelta = errors.New("lattice: delta must lie in (0.25, 1]")

	// ErrDependent indicates linearly dependent basis vectors.
	ErrDependent = errors.New("lattice: basis vectors are linearly dependent")

	// ErrNoConvergence indicates the reduction exceeded its step budget.
	ErrNoConvergence = errors.New("lattice: reduction did not converge")
)

const (
	opReduce   = "Reduce"
	opLLL      = "LLL"
	opSimplify = "Simplify"
)

func latticeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
