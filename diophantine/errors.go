// SPDX-License-Identifier: MIT
// Package diophantine: sentinel error set.

package diophantine

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("diophantine: nil matrix")

	// ErrDimensionMismatch indicates that A and B have different row counts.
	ErrDimensionMismatch = errors.New("diophantine: dimension mismatch")

	// ErrUnsolvable indicates the system has no integer solution (or the
	// solution failed verification).
	ErrUnsolvable = errors.New("diophantine: unsolvable system")
)

const (
	opSolve    = "Solve"
	opPreimage = "Preimage"
)

func diophantineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
