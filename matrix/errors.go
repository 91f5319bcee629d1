// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so failures are easy to grep.
// Kernels return these sentinels wrapped with an operation tag; callers
// match with errors.Is.

package matrix

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// or a non-square input where a square matrix is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEigenFailed indicates that the Jacobi solver did not converge within
	// the sweep budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")
)

// Operation tags for uniform error wrapping.
const (
	opAt    = "Dense.At"
	opSet   = "Dense.Set"
	opGram  = "Gram"
	opEigen = "Eigen"
)

// matrixErrorf wraps err with an operation tag; err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}
