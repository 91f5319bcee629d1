// SPDX-License-Identifier: MIT

package nlp

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/jdkato/prose/v2"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Penn Treebank tags for proper nouns.
const (
	tagNNP  = "NNP"
	tagNNPS = "NNPS"
)

// Analyzer is the language service consumed by segment and entity.
type Analyzer interface {
	// Sentences returns trimmed, non-empty sentences in text order.
	Sentences(text string) []string

	// Words returns every token in text order, punctuation included, with
	// the closing period of each sentence split off as its own token.
	Words(text string) ([]string, error)

	// ProperNouns tags words as one space-joined document and returns the
	// tokens tagged as proper nouns, in order, duplicates kept.
	ProperNouns(words []string) ([]string, error)
}

// English is the default Analyzer: Punkt sentences plus the prose tokenizer
// and tagger.
type English struct {
	punkt *sentences.DefaultSentenceTokenizer
}

var _ Analyzer = (*English)(nil)

// New loads the English Punkt model and returns a ready Analyzer.
// Complexity: O(model size), done once per process by the caller.
func New() (*English, error) {
	punkt, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, errors.Wrap(err, "nlp: load punkt model")
	}

	return &English{punkt: punkt}, nil
}

// Sentences implements Analyzer.
func (e *English) Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	raw := e.punkt.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}

	return out
}

// Words implements Analyzer. Text is split into sentences first and each
// sentence is tokenized on its own, so "Alice, Bob. Carol!" yields
// Alice , Bob . Carol ! while abbreviations such as "Mr." stay whole.
func (e *English) Words(text string) ([]string, error) {
	var out []string
	for _, sent := range e.Sentences(text) {
		doc, err := prose.NewDocument(sent,
			prose.WithSegmentation(false),
			prose.WithTagging(false),
			prose.WithExtraction(false))
		if err != nil {
			return nil, errors.Wrap(err, "nlp: tokenize")
		}
		tokens := doc.Tokens()
		for i, tok := range tokens {
			if i == len(tokens)-1 {
				out = append(out, splitFinalPeriod(tok.Text)...)
				continue
			}
			out = append(out, tok.Text)
		}
	}

	return out, nil
}

// ProperNouns implements Analyzer.
func (e *English) ProperNouns(words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, nil
	}
	doc, err := prose.NewDocument(strings.Join(words, " "),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, errors.Wrap(err, "nlp: tag")
	}

	var out []string
	for _, tok := range doc.Tokens() {
		if tok.Tag == tagNNP || tok.Tag == tagNNPS {
			out = append(out, tok.Text)
		}
	}

	return out, nil
}

// splitFinalPeriod turns "Bob." into "Bob", "." and leaves other tokens alone.
func splitFinalPeriod(tok string) []string {
	stem, ok := strings.CutSuffix(tok, ".")
	if !ok || strings.TrimFunc(stem, unicode.IsPunct) == "" {
		return []string{tok}
	}

	return []string{stem, "."}
}
