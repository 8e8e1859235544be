// SPDX-License-Identifier: MIT
// Package gpv: sentinel error set.

package gpv

import "errors"

var (
	// ErrBadLogs indicates an empty log vector or a non-positive or NaN entry.
	ErrBadLogs = errors.New("gpv: invalid log-subgroup vector")

	// ErrBadRange indicates lo ≥ hi or a NaN bound.
	ErrBadRange = errors.New("gpv: empty search range")

	// ErrInvariant indicates a candidate that does not round from the
	// midpoint of its own interval. Iteration stops when it is reported.
	ErrInvariant = errors.New("gpv: candidate does not match its interval")
)
