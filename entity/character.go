// SPDX-License-Identifier: MIT

package entity

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrMalformedRoster indicates a roster row that yields no alias.
var ErrMalformedRoster = errors.New("entity: malformed roster row")

// Character is a canonical narrative entity.
//
// ID is the column index of the character in presence and co-occurrence
// matrices; it is assigned at resolution time and never derived from content.
type Character struct {
	ID      int
	Name    string
	Aliases []string
}

// Normalize lower-cases s, turns punctuation and symbols into spaces,
// collapses whitespace and pads one space at each end. Empty input
// (or punctuation only) yields "".
//
// Complexity: O(len(s)).
func Normalize(s string) string {
	lowered := cases.Lower(language.English).String(s)
	var b strings.Builder
	b.Grow(len(lowered) + 2)
	b.WriteByte(' ')
	space := true
	for _, r := range lowered {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		b.WriteRune(r)
		space = false
	}
	if b.Len() == 1 {
		return ""
	}
	if !space {
		b.WriteByte(' ')
	}

	return b.String()
}

// displayName derives the canonical name from an alias: "mr darcy" -> "Mr Darcy".
func displayName(alias string) string {
	return cases.Title(language.English).String(strings.TrimSpace(alias))
}

// newCharacter builds a Character from already normalized aliases.
func newCharacter(id int, aliases []string) Character {
	return Character{ID: id, Name: displayName(aliases[0]), Aliases: aliases}
}

// uniqueName returns base, or "base (k)" with the smallest k >= 2 not yet
// in taken, and records the result. Graph nodes and exports are keyed by
// name, so two characters must never share one.
func uniqueName(base string, taken map[string]struct{}) string {
	name := base
	for k := 2; ; k++ {
		if _, dup := taken[name]; !dup {
			break
		}
		name = base + " (" + strconv.Itoa(k) + ")"
	}
	taken[name] = struct{}{}

	return name
}

// ResolveRoster turns alias rows into Characters.
//
// Behavior highlights:
//   - Each cell is normalized; empty cells are skipped.
//   - A row with no usable alias fails with ErrMalformedRoster naming the
//     1-based row number. No partial roster is returned.
//   - Rows whose alias tuple repeats an earlier row are dropped (set semantics).
//   - IDs follow the surviving row order.
//   - Names come from the first alias; a later row whose first alias
//     repeats an earlier name is named "Name (2)", "Name (3)", ...
//
// Complexity: O(total cell length).
func ResolveRoster(rows [][]string) ([]Character, error) {
	out := make([]Character, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	taken := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		aliases := make([]string, 0, len(row))
		for _, cell := range row {
			if a := Normalize(cell); a != "" {
				aliases = append(aliases, a)
			}
		}
		if len(aliases) == 0 {
			return nil, errors.WithHint(
				errors.Wrapf(ErrMalformedRoster, "row %d", i+1),
				"every roster row needs at least one non-empty alias")
		}
		key := strings.Join(aliases, "\x00")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		c := newCharacter(len(out), aliases)
		c.Name = uniqueName(c.Name, taken)
		out = append(out, c)
	}

	return out, nil
}

// Names returns the display names in ID order.
func Names(chars []Character) []string {
	out := make([]string, len(chars))
	for i, c := range chars {
		out[i] = c.Name
	}

	return out
}
