// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear algebra used by the bookworm
// pipeline: a row-major float64 matrix, the Gram product AᵀA that turns a
// presence matrix into a co-occurrence matrix, and a cyclic Jacobi eigen
// solver for Laplacian spectra.
//
// What & Why:
//
//	Every stage of the co-occurrence pipeline is a matrix transform:
//	units × characters presence counts, characters × characters scores,
//	and the graph Laplacian. Keeping a single Dense type with safe
//	accessors and explicit fast paths keeps those stages small and
//	deterministic.
//
// Complexity:
//
//	At/Set are O(1) with bounds checks; Clone is O(r*c).
//	Gram is O(r*c²) in the worst case but skips zero entries, which makes
//	it near-linear for the sparse presence matrices produced from novels.
//	EigenValues is O(sweeps*n³).
//
// Errors:
//
//	All functions return the sentinels from errors.go, wrapped with an
//	operation tag; match them with errors.Is.
package matrix
