// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for nil/shape/symmetry checks.
//   - Return sentinel errors wrapped with the validator tag so call sites
//     can wrap once more with their operation tag.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return errors.Wrap(ErrNilMatrix, "ValidateNotNil")
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return errors.Wrap(ErrNilMatrix, "ValidateNotNil")
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return errors.Wrapf(ErrDimensionMismatch, "ValidateSquare: %dx%d", m.Rows(), m.Cols())
	}

	return nil
}

// ValidateSymmetric checks m is square and |m[i,j] - m[j,i]| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n²) over the strict upper triangle.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return errors.Wrap(ErrNaNInf, "ValidateSymmetric: tolerance")
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // indices are valid after ValidateSquare
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return errors.Wrapf(ErrAsymmetry, "ValidateSymmetric: (%d,%d)", i, j)
			}
		}
	}

	return nil
}
