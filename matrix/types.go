// SPDX-License-Identifier: MIT

package matrix

// Matrix is accepted by every kernel and validator in this package.
// *Dense is the implementation used throughout bookworm.
type Matrix interface {
	Rows() int
	Cols() int

	// At and Set fail with ErrOutOfRange outside [0,Rows()) × [0,Cols()).
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error

	// Clone is a deep copy.
	Clone() Matrix
}

var _ Matrix = (*Dense)(nil)
