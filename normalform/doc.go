// SPDX-License-Identifier: MIT

// Package normalform is the exact integer normal-form engine behind every
// temperament computation: Hermite normal form with unimodular transform,
// kernel and cokernel, saturation ("defactoring"), exact determinant and
// the canonical form of mappings and comma bases.
//
// 🚀 Conventions
//
//	HNF rows are ordered so that nonzero rows come first, pivot columns
//	strictly increase from row to row, every pivot is positive and every
//	entry above a pivot lies in [0, pivot). Zero rows sit at the bottom
//	unless WithRemoveZeros is passed.
//
//	A mapping is r×d (rows are vals). A comma basis is d×n (columns are
//	commas). Kernel returns comma bases, Cokernel returns mappings.
//
// ✨ Guarantees
//   - For every M, HNFWithTransform returns unimodular U with U·M = H.
//   - M·Kernel(M) = 0 and Kernel(M) has Cols(M) − Rank(M) columns.
//   - Canonical is idempotent and DefactoredHNF always has FactorOrder 1.
//   - All arithmetic is arbitrary precision; nothing overflows silently.
//
// Invariant violations (a non-integral defactoring transform, an inexact
// Bareiss division) are reported as errors carrying the offending
// dimensions. They indicate malformed input and are not retried.
package normalform
