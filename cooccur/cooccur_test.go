// SPDX-License-Identifier: MIT

package cooccur_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bookworm/cooccur"
	"github.com/katalvlaran/bookworm/entity"
	"github.com/katalvlaran/bookworm/segment"
)

func units(texts ...string) []segment.Unit {
	out := make([]segment.Unit, len(texts))
	for i, t := range texts {
		out[i] = segment.Unit{Index: i, Text: t}
	}

	return out
}

func roster(t *testing.T, rows ...[]string) []entity.Character {
	t.Helper()
	chars, err := entity.ResolveRoster(rows)
	require.NoError(t, err)

	return chars
}

func TestBuildPresence_Sentences(t *testing.T) {
	chars := roster(t, []string{"alice "}, []string{"bob "}, []string{"carol "})
	p, err := cooccur.BuildPresence(units(
		"Alice met Bob.",
		"Bob met Carol.",
		"Alice and Bob talked again.",
	), chars)
	require.NoError(t, err)

	want := [][]int{{1, 1, 0}, {0, 1, 1}, {1, 1, 0}}
	for u, row := range want {
		for c, v := range row {
			got, err := p.At(u, c)
			require.NoError(t, err)
			assert.Equal(t, v, got, "presence[%d][%d]", u, c)
		}
	}
}

// The indexed path must agree with the direct per-cell count.
func TestBuildPresence_MatchesDirectCount(t *testing.T) {
	chars := roster(t,
		[]string{"Mr Darcy", "Darcy", "Fitzwilliam"},
		[]string{"Elizabeth", "Lizzy", "Miss Bennet"},
		[]string{"Bennet"},
	)
	texts := []string{
		"Mr. Darcy bowed; Darcy smiled at Elizabeth.",
		"Lizzy, said Miss Bennet's mother, Mrs. Bennet.",
		"darcy darcy DARCY",
		"Nobody here.",
		"",
	}
	p, err := cooccur.BuildPresence(units(texts...), chars)
	require.NoError(t, err)
	for u, text := range texts {
		for c, ch := range chars {
			got, err := p.At(u, c)
			require.NoError(t, err)
			assert.Equal(t, cooccur.CountAliases(text, ch), got, "unit %d char %s", u, ch.Name)
		}
	}

	// spot checks
	v, _ := p.At(0, 0)
	assert.Equal(t, 3, v) // "mr darcy" + "darcy" twice
	v, _ = p.At(2, 0)
	assert.Equal(t, 3, v)
	v, _ = p.At(1, 2)
	assert.Equal(t, 2, v)
}

func TestBuildPresence_Empty(t *testing.T) {
	p, err := cooccur.BuildPresence(nil, roster(t, []string{"a"}))
	require.NoError(t, err)
	assert.Zero(t, p.Units())

	p, err = cooccur.BuildPresence(units("x y"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Units())
	assert.Empty(t, p.Characters())

	c, err := cooccur.Score(p, cooccur.Weighted)
	require.NoError(t, err)
	assert.Zero(t, c.Size())
}

func TestScore_Weighted(t *testing.T) {
	chars := roster(t, []string{"alice"}, []string{"bob"}, []string{"carol"})
	p, err := cooccur.BuildPresence(units(
		"Alice met Bob.",
		"Bob met Carol.",
		"Alice and Bob talked again.",
	), chars)
	require.NoError(t, err)
	c, err := cooccur.Score(p, cooccur.Weighted)
	require.NoError(t, err)

	want := [][]int64{{0, 2, 0}, {2, 0, 1}, {0, 1, 0}}
	for i, row := range want {
		for j, v := range row {
			got, err := c.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, v, got, "cooc[%d][%d]", i, j)
		}
	}
}

func TestScore_BinaryVsWeighted(t *testing.T) {
	chars := roster(t, []string{"alice"}, []string{"bob"})
	p, err := cooccur.BuildPresence(units("Bob, bob and Alice. Alice!"), chars)
	require.NoError(t, err)

	w, err := cooccur.Score(p, cooccur.Weighted)
	require.NoError(t, err)
	b, err := cooccur.Score(p, cooccur.Binary)
	require.NoError(t, err)

	wv, _ := w.At(0, 1)
	bv, _ := b.At(0, 1)
	assert.Equal(t, int64(4), wv)
	assert.Equal(t, int64(1), bv)
}

func TestScore_SymmetricZeroDiagonal(t *testing.T) {
	chars := roster(t, []string{"a1"}, []string{"b2"}, []string{"c3"}, []string{"d4"})
	p, err := cooccur.BuildPresence(units(
		"a1 a1 b2", "c3 d4 a1", "b2 b2 b2 c3", "d4", "a1 b2 c3 d4 d4",
	), chars)
	require.NoError(t, err)
	for _, mode := range []cooccur.Scoring{cooccur.Weighted, cooccur.Binary} {
		c, err := cooccur.Score(p, mode)
		require.NoError(t, err)
		for i := 0; i < c.Size(); i++ {
			d, _ := c.At(i, i)
			assert.Zero(t, d)
			for j := 0; j < c.Size(); j++ {
				x, _ := c.At(i, j)
				y, _ := c.At(j, i)
				assert.Equal(t, x, y)
				assert.GreaterOrEqual(t, x, int64(0))
			}
		}
	}
}

func TestParseScoring(t *testing.T) {
	s, err := cooccur.ParseScoring("binary")
	require.NoError(t, err)
	assert.Equal(t, cooccur.Binary, s)
	s, err = cooccur.ParseScoring("")
	require.NoError(t, err)
	assert.Equal(t, cooccur.Weighted, s)
	_, err = cooccur.ParseScoring("cosine")
	assert.True(t, errors.Is(err, cooccur.ErrUnknownScoring))
}
