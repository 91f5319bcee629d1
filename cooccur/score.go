// SPDX-License-Identifier: MIT

package cooccur

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bookworm/entity"
	"github.com/katalvlaran/bookworm/matrix"
)

// ErrUnknownScoring indicates a scoring name outside weighted|binary.
var ErrUnknownScoring = errors.New("cooccur: unknown scoring mode")

// Scoring selects the co-occurrence formula.
type Scoring int

const (
	// Weighted is the inner product of presence counts (default).
	Weighted Scoring = iota
	// Binary counts shared units only.
	Binary
)

// String returns the config name of the scoring mode.
func (s Scoring) String() string {
	switch s {
	case Weighted:
		return "weighted"
	case Binary:
		return "binary"
	}

	return "unknown"
}

// ParseScoring maps "weighted" or "binary" to a Scoring.
func ParseScoring(name string) (Scoring, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "weighted":
		return Weighted, nil
	case "binary":
		return Binary, nil
	}

	return 0, errors.Wrapf(ErrUnknownScoring, "%q", name)
}

// CoOccurrence is the symmetric characters × characters score matrix with
// a zero diagonal.
type CoOccurrence struct {
	chars []entity.Character
	m     *matrix.Dense
}

// Characters returns the row/column characters in ID order.
func (c *CoOccurrence) Characters() []entity.Character { return c.chars }

// Size returns the number of characters.
func (c *CoOccurrence) Size() int { return len(c.chars) }

// At returns the score of pair (i, j); At(i, i) is always 0.
func (c *CoOccurrence) At(i, j int) (int64, error) {
	v, err := c.m.At(i, j)
	if err != nil {
		return 0, errors.Wrap(err, "cooccur: score")
	}

	return int64(math.Round(v)), nil
}

// Score reduces a presence matrix to co-occurrence.
//
// Implementation:
//   - Stage 1: Binary mode clamps every count to 1.
//   - Stage 2: matrix.Gram computes PᵀP in one pass over non-zero cells.
//   - Stage 3: the diagonal is overwritten with 0.
//
// Complexity: O(Σ nnz(row)²), Space O(characters²).
func Score(p *Presence, mode Scoring) (*CoOccurrence, error) {
	if p == nil {
		return nil, errors.Wrap(matrix.ErrNilMatrix, "cooccur: score")
	}
	src := p.m
	switch mode {
	case Weighted:
	case Binary:
		src = binarize(p.m)
	default:
		return nil, errors.Wrapf(ErrUnknownScoring, "%d", int(mode))
	}

	g, err := matrix.Gram(src)
	if err != nil {
		return nil, errors.Wrap(err, "cooccur: score")
	}
	g.FillDiagonal(0)

	return &CoOccurrence{chars: p.chars, m: g}, nil
}

func binarize(m *matrix.Dense) *matrix.Dense {
	out := m.Clone().(*matrix.Dense)
	r, c := out.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, _ := out.At(i, j); v > 0 {
				_ = out.Set(i, j, 1)
			}
		}
	}

	return out
}
