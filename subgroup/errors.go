// SPDX-License-Identifier: MIT
// Package subgroup: sentinel error set.

package subgroup

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a subgroup without elements.
	ErrEmpty = errors.New("subgroup: empty subgroup")

	// ErrNonPositive indicates an element ≤ 0.
	ErrNonPositive = errors.New("subgroup: element must be positive")

	// ErrUnison indicates the element 1/1, which has no pitch extent.
	ErrUnison = errors.New("subgroup: element 1/1 is not allowed")

	// ErrParse indicates a malformed subgroup or ratio string.
	ErrParse = errors.New("subgroup: cannot parse")

	// ErrFactorization indicates a prime factor beyond the prime table.
	ErrFactorization = errors.New("subgroup: prime decomposition failed")

	// ErrLimit indicates a prime limit outside (1, 7920).
	ErrLimit = errors.New("subgroup: prime limit out of range")

	// ErrDimensionMismatch indicates a vector whose length does not match the prime list.
	ErrDimensionMismatch = errors.New("subgroup: dimension mismatch")
)

const (
	opNew      = "New"
	opParse    = "Parse"
	opLimit    = "PrimeLimit"
	opFactors  = "Factors"
	opBasis    = "Basis"
	opRatio    = "Ratio"
	opFromBase = "FromBasis"
)

func subgroupErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
