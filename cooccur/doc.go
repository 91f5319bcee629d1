// SPDX-License-Identifier: MIT

// Package cooccur builds the units × characters presence matrix and reduces
// it to the characters × characters co-occurrence matrix.
//
// Presence:
//
//	presence[u][c] = Σ over c's aliases of the occurrences of the alias in the
//	normalized text of unit u. Single-token aliases are counted from one
//	term-frequency pass per unit restricted to entity tokens; multi-token
//	aliases fall back to a substring scan. Both paths agree with CountAliases.
//
// Scoring:
//
//	Weighted (default): C = PᵀP, the inner product over units, so repeated
//	co-mentions inside one unit count more than once.
//	Binary: C = BᵀB with B = [P > 0], the number of shared units.
//
// In both modes the diagonal is zeroed and C is symmetric.
package cooccur
