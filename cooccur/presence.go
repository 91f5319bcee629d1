// SPDX-License-Identifier: MIT

package cooccur

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bookworm/entity"
	"github.com/katalvlaran/bookworm/matrix"
	"github.com/katalvlaran/bookworm/segment"
)

// Presence is the units × characters count matrix of one pipeline run.
type Presence struct {
	chars []entity.Character
	m     *matrix.Dense
}

// Characters returns the column characters in ID order.
func (p *Presence) Characters() []entity.Character { return p.chars }

// Units returns the row count.
func (p *Presence) Units() int { return p.m.Rows() }

// At returns the count for unit u and character column c.
func (p *Presence) At(u, c int) (int, error) {
	v, err := p.m.At(u, c)
	if err != nil {
		return 0, errors.Wrap(err, "cooccur: presence")
	}

	return int(v), nil
}

// Matrix exposes the underlying dense matrix.
func (p *Presence) Matrix() *matrix.Dense { return p.m }

// aliasPlan splits every character's aliases into single-token aliases
// (served by the term-frequency index) and multi-token aliases.
type aliasPlan struct {
	byToken map[string][]int // token -> character columns (one entry per matching alias)
	multi   [][]string       // column -> multi-token aliases
}

func planAliases(chars []entity.Character) aliasPlan {
	plan := aliasPlan{
		byToken: make(map[string][]int),
		multi:   make([][]string, len(chars)),
	}
	for col, c := range chars {
		for _, alias := range c.Aliases {
			a := entity.Normalize(alias)
			if a == "" {
				continue
			}
			inner := strings.TrimSpace(a)
			if !strings.Contains(inner, " ") {
				plan.byToken[inner] = append(plan.byToken[inner], col)
				continue
			}
			plan.multi[col] = append(plan.multi[col], a)
		}
	}

	return plan
}

// BuildPresence counts alias occurrences for every (unit, character) pair.
//
// Implementation:
//   - Stage 1: plan aliases once (token index + multi-token list).
//   - Stage 2: per unit, normalize once, walk its tokens against the index,
//     then scan multi-token aliases.
//
// Behavior highlights:
//   - Zero units or zero characters yield an empty-shaped matrix, not an error.
//   - Row order is the unit order; column order is the character ID order.
//
// Complexity: O(Σ|unit| + units × multi-token aliases × |unit|).
func BuildPresence(units []segment.Unit, chars []entity.Character) (*Presence, error) {
	m, err := matrix.NewDense(len(units), len(chars))
	if err != nil {
		return nil, errors.Wrap(err, "cooccur: presence")
	}
	p := &Presence{chars: chars, m: m}
	if len(units) == 0 || len(chars) == 0 {
		return p, nil
	}

	plan := planAliases(chars)
	for row, u := range units {
		text := entity.Normalize(u.Text)
		if text == "" {
			continue
		}
		if len(plan.byToken) > 0 {
			for _, tok := range strings.Fields(text) {
				for _, col := range plan.byToken[tok] {
					if err = m.Inc(row, col, 1); err != nil {
						return nil, errors.Wrap(err, "cooccur: presence")
					}
				}
			}
		}
		for col, aliases := range plan.multi {
			for _, a := range aliases {
				if n := countPadded(text, a); n > 0 {
					if err = m.Inc(row, col, float64(n)); err != nil {
						return nil, errors.Wrap(err, "cooccur: presence")
					}
				}
			}
		}
	}

	return p, nil
}

// CountAliases is the direct form of one presence cell: the sum of
// occurrences of c's aliases in text, both sides normalized.
func CountAliases(text string, c entity.Character) int {
	norm := entity.Normalize(text)
	total := 0
	for _, alias := range c.Aliases {
		if a := entity.Normalize(alias); a != "" {
			total += countPadded(norm, a)
		}
	}

	return total
}

// countPadded counts occurrences of a space-padded needle, letting
// consecutive matches share their boundary space.
func countPadded(text, needle string) int {
	count, i := 0, 0
	for {
		idx := strings.Index(text[i:], needle)
		if idx < 0 {
			return count
		}
		count++
		i += idx + len(needle) - 1
	}
}
