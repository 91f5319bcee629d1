// SPDX-License-Identifier: MIT

package segment_test

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bookworm/nlp"
	"github.com/katalvlaran/bookworm/segment"
)

// stubAnalyzer splits sentences on ". " and words on whitespace.
type stubAnalyzer struct{}

func (stubAnalyzer) Sentences(text string) []string {
	var out []string
	for _, s := range strings.SplitAfter(text, ". ") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}

func (stubAnalyzer) Words(text string) ([]string, error) { return strings.Fields(text), nil }

func (stubAnalyzer) ProperNouns(words []string) ([]string, error) { return nil, nil }

func texts(t *testing.T, seq *segment.Sequence) []string {
	t.Helper()
	units, err := seq.Units()
	require.NoError(t, err)

	return segment.Texts(units)
}

func TestWordWindows(t *testing.T) {
	seq, err := segment.Segment("one two three four five", segment.Word, 2, stubAnalyzer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"one two", "three four", "five"}, texts(t, seq))
}

func TestWordWindows_EnglishAnalyzer(t *testing.T) {
	a, err := nlp.New()
	require.NoError(t, err)
	seq, err := segment.Segment("one two three four five", segment.Word, 2, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"one two", "three four", "five"}, texts(t, seq))
}

func TestCharWindows(t *testing.T) {
	seq, err := segment.Segment("abcdefg", segment.Char, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def", "g"}, texts(t, seq))

	// runes, not bytes
	seq, err = segment.Segment("héllo", segment.Char, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"hé", "ll", "o"}, texts(t, seq))
}

func TestSentenceUnits_Indexed(t *testing.T) {
	seq, err := segment.Segment("A b. C d. E f.", segment.Sentence, 0, stubAnalyzer{})
	require.NoError(t, err)
	units, err := seq.Units()
	require.NoError(t, err)
	require.Len(t, units, 3)
	for i, u := range units {
		assert.Equal(t, i, u.Index)
	}
	assert.Equal(t, "C d.", units[1].Text)
}

// Six sentences with window 3 give 6-3-1 = 2 windows.
func TestSlidingWindows_Count(t *testing.T) {
	text := "S1. S2. S3. S4. S5. S6."
	seq, err := segment.Segment(text, segment.Sliding, 3, stubAnalyzer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"S1. S2. S3.", "S2. S3. S4."}, texts(t, seq))

	seq, err = segment.Segment("S1. S2. S3. S4.", segment.Sliding, 3, stubAnalyzer{})
	require.NoError(t, err)
	assert.Zero(t, seq.Len())
}

func TestEmptyText(t *testing.T) {
	for _, mode := range []segment.Mode{segment.Sentence, segment.Word, segment.Char, segment.Sliding} {
		seq, err := segment.Segment("  ", mode, 0, stubAnalyzer{})
		require.NoError(t, err)
		assert.Zero(t, seq.Len(), mode.String())
		assert.NoError(t, seq.Err())
	}
}

func TestSequence_Restartable(t *testing.T) {
	seq := segment.FromUnits([]segment.Unit{{Index: 0, Text: "a"}, {Index: 1, Text: "b"}})
	var first, second []string
	for u := range seq.All() {
		first = append(first, u.Text)
	}
	for u := range seq.All() {
		second = append(second, u.Text)
	}
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, first, second)
}

func TestSegment_Errors(t *testing.T) {
	_, err := segment.Segment("x", segment.Mode(9), 0, stubAnalyzer{})
	assert.True(t, errors.Is(err, segment.ErrUnknownMode))

	_, err = segment.Segment("x", segment.Word, -1, stubAnalyzer{})
	assert.True(t, errors.Is(err, segment.ErrBadSize))

	_, err = segment.Segment("x", segment.Word, 2, nil)
	assert.True(t, errors.Is(err, segment.ErrNoAnalyzer))
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"sentence", "word", "char", "sliding"} {
		m, err := segment.ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	_, err := segment.ParseMode("paragraph")
	assert.True(t, errors.Is(err, segment.ErrUnknownMode))
}

func TestEffectiveSize(t *testing.T) {
	assert.Equal(t, 50, segment.EffectiveSize(segment.Word, 0))
	assert.Equal(t, 200, segment.EffectiveSize(segment.Char, 0))
	assert.Equal(t, 3, segment.EffectiveSize(segment.Sliding, 0))
	assert.Equal(t, 7, segment.EffectiveSize(segment.Word, 7))
}
