// SPDX-License-Identifier: MIT
// Package intmat: sentinel error set.
// Every message is prefixed with "intmat: ..." and operations wrap the
// sentinel with an operation tag through intmatErrorf, so callers match with
// errors.Is.

package intmat

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("intmat: invalid shape")

	// ErrRagged is returned when row slices passed to a constructor differ in length.
	ErrRagged = errors.New("intmat: ragged rows")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("intmat: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("intmat: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed.
	ErrNilMatrix = errors.New("intmat: nil matrix")

	// ErrOverflow is returned when an entry does not fit the requested
	// fixed-width integer type.
	ErrOverflow = errors.New("intmat: entry overflows int64")
)

// Operation tags for error wrapping.
const (
	opNew      = "New"
	opFromInts = "FromInts"
	opFromBig  = "FromBig"
	opAt       = "At"
	opMul      = "Mul"
	opVStack   = "VStack"
	opHStack   = "HStack"
	opSlice    = "Slice"
	opInts     = "Ints"
)

// intmatErrorf wraps err with an operation tag, keeping errors.Is intact.
func intmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
