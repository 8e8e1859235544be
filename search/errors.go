// SPDX-License-Identifier: MIT
// Package search: sentinel error set.

package search

import (
	"errors"
	"fmt"
)

var (
	// ErrBadOptions is returned for a non-positive cap, a negative slack or
	// an empty GPV range.
	ErrBadOptions = errors.New("search: invalid options")

	// ErrNilMatrix is returned for a nil target mapping.
	ErrNilMatrix = errors.New("search: nil target")

	// ErrBadTarget is returned for a target whose first entry (equave
	// division) is not positive, or whose width differs from the subgroup.
	ErrBadTarget = errors.New("search: invalid target mapping")

	// ErrBadCandidate is returned for a nil candidate val or one whose
	// width differs from the target.
	ErrBadCandidate = errors.New("search: invalid candidate val")
)

const (
	opFindEDOs       = "FindEDOs"
	opFindPatentEDOs = "FindPatentEDOs"
	opFindJoin       = "FindJoin"
)

func searchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
