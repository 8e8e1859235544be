// SPDX-License-Identifier: MIT

// Package lattice reduces comma bases and simplifies intervals under a
// weighted metric ⟨u, v⟩ = uᵗ·W·v.
//
// Reduce is a textbook Lenstra–Lenstra–Lovász reduction with exact integer
// basis vectors and floating-point Gram–Schmidt data. LLL adapts it to comma
// bases (commas as columns) and orders the result by weighted complexity.
// Simplify walks each interval downhill by adding or subtracting commas
// until no single step lowers its weighted norm.
package lattice
