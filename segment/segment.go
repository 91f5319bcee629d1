// SPDX-License-Identifier: MIT

// Package segment splits raw text into ordered analysis units.
//
// Modes:
//
//	Sentence  one unit per detected English sentence.
//	Word      non-overlapping windows of n word tokens (default 50); the last may be shorter.
//	Char      non-overlapping windows of n runes (default 200); the last may be shorter.
//	Sliding   windows of n consecutive sentences (default 3), stride 1. The
//	          window count is len(sentences)-n-1, so trailing sentences that
//	          cannot start a counted window are dropped.
//
// Empty text yields an empty Sequence, never an error.
package segment

import (
	"iter"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bookworm/nlp"
)

// Sentinel errors.
var (
	// ErrUnknownMode indicates a mode name or value outside the four modes.
	ErrUnknownMode = errors.New("segment: unknown mode")

	// ErrBadSize indicates a negative window size.
	ErrBadSize = errors.New("segment: window size must be >= 0")

	// ErrNoAnalyzer indicates a token-based mode was requested without an Analyzer.
	ErrNoAnalyzer = errors.New("segment: analyzer is required")
)

// Mode selects the unit granularity.
type Mode int

const (
	Sentence Mode = iota
	Word
	Char
	Sliding
)

// Default window sizes, applied when size == 0.
const (
	DefaultWordSize    = 50
	DefaultCharSize    = 200
	DefaultSlidingSize = 3
)

var modeNames = [...]string{
	Sentence: "sentence",
	Word:     "word",
	Char:     "char",
	Sliding:  "sliding",
}

// String returns the config/CLI name of the mode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}

	return modeNames[m]
}

// ParseMode maps a name ("sentence", "word", "char", "sliding") to a Mode.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownMode, "%q", name)
}

// Unit is one immutable span of text with its ordinal position.
type Unit struct {
	Index int
	Text  string
}

// Sequence is a finite, restartable, lazily built sequence of Units.
// Units are produced on first access and cached; every iteration replays them.
type Sequence struct {
	once  sync.Once
	build func() ([]Unit, error)
	units []Unit
	err   error
}

// FromUnits wraps an already materialized slice.
func FromUnits(units []Unit) *Sequence {
	return &Sequence{build: func() ([]Unit, error) { return units, nil }}
}

func (s *Sequence) load() {
	s.once.Do(func() { s.units, s.err = s.build() })
}

// Units materializes the sequence.
func (s *Sequence) Units() ([]Unit, error) {
	s.load()

	return s.units, s.err
}

// Len returns the unit count; it is 0 when building failed.
func (s *Sequence) Len() int {
	s.load()

	return len(s.units)
}

// Err reports the build error, if any.
func (s *Sequence) Err() error {
	s.load()

	return s.err
}

// All yields the units in order. It yields nothing when building failed;
// check Err afterwards.
func (s *Sequence) All() iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		s.load()
		for _, u := range s.units {
			if !yield(u) {
				return
			}
		}
	}
}

// Texts returns the unit texts in order.
func Texts(units []Unit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Text
	}

	return out
}

// EffectiveSize resolves size 0 to the mode's default.
func EffectiveSize(mode Mode, size int) int {
	if size != 0 {
		return size
	}
	switch mode {
	case Word:
		return DefaultWordSize
	case Char:
		return DefaultCharSize
	case Sliding:
		return DefaultSlidingSize
	}

	return 0
}

// Segment validates its arguments and returns a lazy Sequence over text.
//
// Errors:
//   - ErrUnknownMode, ErrBadSize (immediately).
//   - Tokenizer failures surface from Sequence.Units / Sequence.Err.
//
// Complexity: O(len(text)) once materialized.
func Segment(text string, mode Mode, size int, a nlp.Analyzer) (*Sequence, error) {
	if mode < Sentence || mode > Sliding {
		return nil, errors.Wrapf(ErrUnknownMode, "%d", int(mode))
	}
	if size < 0 {
		return nil, errors.Wrapf(ErrBadSize, "%d", size)
	}
	if a == nil && mode != Char {
		return nil, errors.Wrapf(ErrNoAnalyzer, "mode %s", mode)
	}
	n := EffectiveSize(mode, size)

	return &Sequence{build: func() ([]Unit, error) {
		if strings.TrimSpace(text) == "" {
			return nil, nil
		}
		switch mode {
		case Sentence:
			return indexed(a.Sentences(text)), nil
		case Word:
			words, err := a.Words(text)
			if err != nil {
				return nil, errors.Wrap(err, "segment: word windows")
			}
			return indexed(chunkWords(words, n)), nil
		case Char:
			return indexed(chunkRunes(text, n)), nil
		default:
			return indexed(slide(a.Sentences(text), n)), nil
		}
	}}, nil
}

func indexed(texts []string) []Unit {
	if len(texts) == 0 {
		return nil
	}
	out := make([]Unit, len(texts))
	for i, t := range texts {
		out[i] = Unit{Index: i, Text: t}
	}

	return out
}

func chunkWords(words []string, n int) []string {
	out := make([]string, 0, len(words)/n+1)
	for i := 0; i < len(words); i += n {
		end := min(i+n, len(words))
		out = append(out, strings.Join(words[i:end], " "))
	}

	return out
}

func chunkRunes(text string, n int) []string {
	runes := []rune(text)
	out := make([]string, 0, len(runes)/n+1)
	for i := 0; i < len(runes); i += n {
		end := min(i+n, len(runes))
		out = append(out, string(runes[i:end]))
	}

	return out
}

// slide keeps the len(sentences)-n-1 window count.
func slide(sentences []string, n int) []string {
	count := len(sentences) - n - 1
	if count <= 0 {
		return nil
	}
	out := make([]string, count)
	for i := 0; i < count; i++ {
		out[i] = strings.Join(sentences[i:i+n], " ")
	}

	return out
}
