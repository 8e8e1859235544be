// SPDX-License-Identifier: MIT
// Package normalform: sentinel error set.

package normalform

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("normalform: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("normalform: matrix is not square")

	// ErrRankDeficient signals that a full-row-rank matrix was required.
	ErrRankDeficient = errors.New("normalform: matrix is not full row rank")

	// ErrNotIntegral signals that the defactoring transform produced a
	// non-integer entry. Unreachable for full-row-rank input.
	ErrNotIntegral = errors.New("normalform: defactoring produced non-integer entries")

	// ErrInexactDivision signals that a Bareiss step was not exactly divisible
	// by the previous pivot. Unreachable for integer input.
	ErrInexactDivision = errors.New("normalform: inexact division in fraction-free elimination")
)

// Operation tags for uniform error wrapping.
const (
	opHNF         = "HNF"
	opKernel      = "Kernel"
	opCokernel    = "Cokernel"
	opDefactor    = "DefactoredHNF"
	opDeterminant = "Determinant"
	opFactorOrder = "FactorOrder"
	opCanonical   = "Canonical"
	opRank        = "Rank"
)

// normalformErrorf wraps err with an operation tag.
func normalformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
