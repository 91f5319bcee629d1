// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// Numeric defaults for the symmetric eigen solver.
const (
	// DefaultEigenTol is the max |A[p,q]| accepted as converged.
	DefaultEigenTol = 1e-9

	// DefaultMaxSweeps caps full cyclic sweeps over the strict upper triangle.
	DefaultMaxSweeps = 100

	// thetaOverflow bounds θ before θ² would overflow; beyond it t ≈ 1/(2θ).
	thetaOverflow = 1e150
)

// Gram computes G = AᵀA without materializing Aᵀ.
//
// Implementation:
//   - Stage 1: ValidateNotNil(a); allocate c×c result.
//   - Stage 2: for every row of A, collect the non-zero columns once, then
//     accumulate A[i,p]*A[i,q] into G[p,q] for p ≤ q over that list.
//   - Stage 3: mirror the upper triangle into the lower one.
//
// Behavior highlights:
//   - The result is exactly symmetric (the lower half is a copy, not recomputed).
//   - Rows with zero or one non-zero entry only touch the diagonal.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(Σ nnz(row)²) ≤ O(r*c²), Space O(c² + c).
func Gram(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	rows, n := da.r, da.c
	g, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	var (
		i, j, x, y int
		p, q, base int
		vp         float64
	)
	nz := make([]int, 0, n)
	for i = 0; i < rows; i++ {
		base = i * n
		nz = nz[:0]
		for j = 0; j < n; j++ {
			if da.data[base+j] != 0 {
				nz = append(nz, j)
			}
		}
		for x = 0; x < len(nz); x++ {
			p = nz[x]
			vp = da.data[base+p]
			for y = x; y < len(nz); y++ {
				q = nz[y]
				g.data[p*n+q] += vp * da.data[base+q]
			}
		}
	}
	for p = 0; p < n; p++ {
		for q = p + 1; q < n; q++ {
			g.data[q*n+p] = g.data[p*n+q]
		}
	}

	return g, nil
}

// EigenValues computes the eigenvalues of a symmetric matrix with cyclic
// Jacobi sweeps.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol).
//   - Stage 2: sweep every (p,q), p<q, in row order; rotate away A[p,q]
//     whenever |A[p,q]| > tol. Stop when a sweep starts with max|A[p,q]| < tol.
//   - Stage 3: read the diagonal and sort ascending.
//
// Inputs:
//   - tol: convergence threshold (DefaultEigenTol is a good choice).
//   - maxSweeps: safety cap on full sweeps (DefaultMaxSweeps).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf,
//     ErrEigenFailed (not converged within maxSweeps).
//
// Determinism:
//   - Fixed sweep order.
//
// Complexity:
//   - Time O(maxSweeps * n³), Space O(n²).
func EigenValues(m Matrix, tol float64, maxSweeps int) ([]float64, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	if tol <= 0 || maxSweeps <= 0 {
		return nil, matrixErrorf(opEigen, errors.Wrapf(ErrEigenFailed, "tol=%g maxSweeps=%d", tol, maxSweeps))
	}

	n := m.Rows()
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	a := src.Clone().(*Dense)
	for _, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opEigen, ErrNaNInf)
		}
	}

	var (
		sweep, i, p, r int
		app, aqq, apq  float64
		aip, aiq       float64
		newIP, newIQ   float64
		theta, t, c, s float64
		converged      bool
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		if maxOffDiagonal(a) < tol {
			converged = true
			break
		}
		for p = 0; p < n; p++ {
			for r = p + 1; r < n; r++ {
				apq = a.data[p*n+r]
				if math.Abs(apq) <= tol {
					continue
				}
				app = a.data[p*n+p]
				aqq = a.data[r*n+r]

				// θ = (aqq−app)/(2*apq); t = sign(θ)/(|θ|+√(θ²+1))
				theta = (aqq - app) / (2 * apq)
				if math.Abs(theta) > thetaOverflow {
					t = 1 / (2 * theta)
				} else {
					t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				}
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip = a.data[i*n+p]
					aiq = a.data[i*n+r]
					newIP = c*aip - s*aiq
					newIQ = s*aip + c*aiq
					a.data[i*n+p], a.data[p*n+i] = newIP, newIP
					a.data[i*n+r], a.data[r*n+i] = newIQ, newIQ
				}
				a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
				a.data[r*n+r] = s*s*app + 2*c*s*apq + c*c*aqq
				a.data[p*n+r], a.data[r*n+p] = 0, 0
			}
		}
	}
	if !converged && maxOffDiagonal(a) >= tol {
		return nil, matrixErrorf(opEigen, errors.Wrapf(ErrEigenFailed, "after %d sweeps", maxSweeps))
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}
	sort.Float64s(vals)

	return vals, nil
}

// maxOffDiagonal returns max |A[i,j]| over the strict upper triangle.
func maxOffDiagonal(a *Dense) float64 {
	n := a.r
	var maxOff, off float64
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}

	return maxOff
}
