// SPDX-License-Identifier: MIT

// Package diophantine solves integer linear systems A·X = B exactly, on top
// of the Hermite normal form engine in package normalform.
//
// The method follows T. Close's "Diophantine" notes: the augmented block
//
//	[ Aᵗ  0  ]
//	[ Bᵗ  I_k]
//
// is brought to Hermite normal form with its unimodular transform U. Rows of
// the normal form that vanish in the Aᵗ block and equal the identity in the
// I_k block record, in U, the combinations −Xᵗ·Aᵗ + Bᵗ = 0.
//
// Preimage uses Solve to find a right inverse G of a full-row-rank mapping
// (M·G = I): the generators of a temperament in interval space.
//
// Every solution is verified by multiplying back. A failed verification is
// reported as ErrUnsolvable; for internally constructed, consistent systems
// it is unreachable and must be treated as a bug, not retried.
package diophantine
