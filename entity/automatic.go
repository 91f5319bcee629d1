// SPDX-License-Identifier: MIT

package entity

import (
	_ "embed"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/bookworm/nlp"
)

// DefaultMinLength is the minimum rune length of an automatic candidate.
const DefaultMinLength = 3

//go:embed stopwords_en.txt
var stopwordsEN string

// Stopwords returns the English stopword list used by ResolveAutomatic.
func Stopwords() []string {
	return strings.Fields(stopwordsEN)
}

// Option configures ResolveAutomatic.
type Option func(*autoOptions)

type autoOptions struct {
	minLength int
	stopwords map[string]struct{}
}

// WithMinLength sets the minimum candidate length in runes (values < 1 are ignored).
func WithMinLength(n int) Option {
	return func(o *autoOptions) {
		if n > 0 {
			o.minLength = n
		}
	}
}

// WithStopwords replaces the stopword list. Matching is case-insensitive.
func WithStopwords(words []string) Option {
	return func(o *autoOptions) { o.stopwords = wordSet(words) }
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}

	return set
}

// ResolveAutomatic extracts single-alias Characters from raw text.
//
// Implementation:
//   - Stage 1: split on whitespace, delete punctuation runes, keep unique words.
//   - Stage 2: tag the unique words; keep proper nouns.
//   - Stage 3: keep title-cased candidates with at least minLength runes.
//   - Stage 4: drop "Xs" when "X" is also a candidate (CollapsePlurals).
//   - Stage 5: title-case, deduplicate, remove stopwords.
//
// Returns Characters sorted by name, IDs 0..n-1. Empty text or no
// surviving candidate yields an empty slice and no error.
//
// Errors: tagger failures from the Analyzer.
func ResolveAutomatic(text string, a nlp.Analyzer, opts ...Option) ([]Character, error) {
	o := autoOptions{minLength: DefaultMinLength}
	for _, opt := range opts {
		opt(&o)
	}
	if o.stopwords == nil {
		o.stopwords = wordSet(Stopwords())
	}

	unique := uniqueWords(text)
	if len(unique) == 0 {
		return []Character{}, nil
	}
	if a == nil {
		return nil, errors.New("entity: analyzer is required")
	}
	tagged, err := a.ProperNouns(unique)
	if err != nil {
		return nil, errors.Wrap(err, "entity: tag candidates")
	}

	candidates := make([]string, 0, len(tagged))
	for _, c := range tagged {
		if utf8.RuneCountInString(c) >= o.minLength && isTitle(c) {
			candidates = append(candidates, c)
		}
	}
	candidates = CollapsePlurals(candidates)

	title := cases.Title(language.English)
	names := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		name := title.String(strings.ToLower(c))
		if _, stop := o.stopwords[strings.ToLower(name)]; stop {
			continue
		}
		names[name] = struct{}{}
	}

	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	out := make([]Character, 0, len(sorted))
	for _, n := range sorted {
		if alias := Normalize(n); alias != "" {
			out = append(out, newCharacter(len(out), []string{alias}))
		}
	}

	return out, nil
}

// CollapsePlurals drops every candidate ending in "s" whose singular
// (trailing "s" removed) is also a candidate. Order is preserved.
func CollapsePlurals(candidates []string) []string {
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if stem, ok := strings.CutSuffix(c, "s"); ok {
			if _, dup := set[stem]; dup {
				continue
			}
		}
		out = append(out, c)
	}

	return out
}

// uniqueWords splits on whitespace, strips punctuation and returns the
// distinct non-empty words in sorted order.
func uniqueWords(text string) []string {
	seen := make(map[string]struct{})
	for _, f := range strings.Fields(text) {
		w := strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) {
				return -1
			}
			return r
		}, f)
		if w != "" {
			seen[w] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// isTitle reports whether s has at least one cased rune, upper-case runes
// only after uncased ones and lower-case runes only after cased ones.
func isTitle(s string) bool {
	cased, prevCased := false, false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}

	return cased
}
