// SPDX-License-Identifier: MIT

package entity_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bookworm/entity"
	"github.com/katalvlaran/bookworm/nlp"
)

// capsTagger tags every word starting with an upper-case letter as a proper noun.
type capsTagger struct{}

func (capsTagger) Sentences(text string) []string      { return []string{text} }
func (capsTagger) Words(text string) ([]string, error) { return strings.Fields(text), nil }
func (capsTagger) ProperNouns(words []string) ([]string, error) {
	var out []string
	for _, w := range words {
		for _, r := range w {
			if unicode.IsUpper(r) {
				out = append(out, w)
			}
			break
		}
	}

	return out, nil
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Alice":          " alice ",
		"alice ":         " alice ",
		"Alice met Bob.": " alice met bob ",
		"  Mr.  Darcy  ": " mr darcy ",
		"Bob's hat":      " bob s hat ",
		"...":            "",
		"":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, entity.Normalize(in), "Normalize(%q)", in)
	}
}

func TestResolveRoster(t *testing.T) {
	chars, err := entity.ResolveRoster([][]string{
		{"Alice"},
		{"Bob", "Robert", " "},
		{"Carol"},
		{"ALICE"}, // same alias tuple as row 1
	})
	require.NoError(t, err)
	require.Len(t, chars, 3)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, entity.Names(chars))
	assert.Equal(t, []string{" bob ", " robert "}, chars[1].Aliases)
	for i, c := range chars {
		assert.Equal(t, i, c.ID)
		assert.NotEmpty(t, c.Aliases)
	}
}

func TestResolveRoster_SharedFirstAliasGetsDistinctNames(t *testing.T) {
	chars, err := entity.ResolveRoster([][]string{
		{"Harry", "Potter"},
		{"Harry"},
		{"Ron"},
		{"harry", "H"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Harry", "Harry (2)", "Ron", "Harry (3)"}, entity.Names(chars))
	assert.Equal(t, []string{" harry "}, chars[1].Aliases)
}

func TestResolveRoster_MalformedRow(t *testing.T) {
	_, err := entity.ResolveRoster([][]string{{"Alice"}, {"", "  "}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrMalformedRoster))
	assert.Contains(t, err.Error(), "row 2")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestResolveRoster_Empty(t *testing.T) {
	chars, err := entity.ResolveRoster(nil)
	require.NoError(t, err)
	assert.Empty(t, chars)
}

func TestCollapsePlurals(t *testing.T) {
	assert.Equal(t, []string{"Hobbit"}, entity.CollapsePlurals([]string{"Hobbit", "Hobbits"}))
	assert.Equal(t, []string{"James"}, entity.CollapsePlurals([]string{"James"}))
	// known limitation: the real name is dropped when its truncation is a candidate
	assert.Equal(t, []string{"Jame"}, entity.CollapsePlurals([]string{"James", "Jame"}))
}

func TestResolveAutomatic(t *testing.T) {
	text := "The Hobbit met the Hobbits. Gandalf's staff glowed; Gandalf smiled. " +
		"Bilbo ran to Bag End with Sam. McGregor watched. GANDALF shouted."
	chars, err := entity.ResolveAutomatic(text, capsTagger{})
	require.NoError(t, err)

	names := entity.Names(chars)
	assert.Contains(t, names, "Hobbit")
	assert.NotContains(t, names, "Hobbits")
	assert.Contains(t, names, "Gandalf")
	assert.NotContains(t, names, "Gandalfs") // "Gandalf's" loses its apostrophe, then collapses
	assert.Contains(t, names, "Bilbo")
	assert.Contains(t, names, "Bag")
	assert.Contains(t, names, "Sam")
	assert.Contains(t, names, "End")
	assert.NotContains(t, names, "The")      // stopword
	assert.NotContains(t, names, "Mcgregor") // not title-cased
	assert.NotContains(t, names, "GANDALF")

	for i, c := range chars {
		assert.Equal(t, i, c.ID)
		require.Len(t, c.Aliases, 1)
		assert.Equal(t, entity.Normalize(c.Name), c.Aliases[0])
	}
}

func TestResolveAutomatic_EnglishTagger(t *testing.T) {
	en, err := nlp.New()
	require.NoError(t, err)

	text := "The Hobbit met Gandalf. the Hobbits followed Gandalf home."
	chars, err := entity.ResolveAutomatic(text, en)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gandalf", "Hobbit"}, entity.Names(chars))
}

func TestResolveAutomatic_MinLength(t *testing.T) {
	chars, err := entity.ResolveAutomatic("Al met Sam and Bo", capsTagger{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sam"}, entity.Names(chars))

	chars, err = entity.ResolveAutomatic("Al met Sam and Bo", capsTagger{}, entity.WithMinLength(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"Al", "Bo", "Sam"}, entity.Names(chars))
}

func TestResolveAutomatic_StopwordsCaseInsensitive(t *testing.T) {
	chars, err := entity.ResolveAutomatic("Frodo Samwise", capsTagger{}, entity.WithStopwords([]string{"FRODO"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Samwise"}, entity.Names(chars))
}

func TestResolveAutomatic_Empty(t *testing.T) {
	chars, err := entity.ResolveAutomatic("   ", capsTagger{})
	require.NoError(t, err)
	assert.Empty(t, chars)

	chars, err = entity.ResolveAutomatic("all lower case words", capsTagger{})
	require.NoError(t, err)
	assert.Empty(t, chars)
}

func TestStopwords(t *testing.T) {
	sw := entity.Stopwords()
	assert.Len(t, sw, 179)
	assert.Contains(t, sw, "the")
	assert.Contains(t, sw, "wouldn't")
}
