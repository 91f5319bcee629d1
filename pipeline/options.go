// SPDX-License-Identifier: MIT

package pipeline

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/bookworm/cooccur"
	"github.com/katalvlaran/bookworm/entity"
	"github.com/katalvlaran/bookworm/graph"
	"github.com/katalvlaran/bookworm/segment"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger injects a logger (default: no-op).
func WithLogger(l *zap.SugaredLogger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithThreshold sets the edge threshold; only scores strictly above it survive.
func WithThreshold(t int64) Option {
	return func(p *Pipeline) { p.threshold = t }
}

// WithSegmentation selects the unit mode and window size (0 = mode default).
func WithSegmentation(mode segment.Mode, size int) Option {
	return func(p *Pipeline) { p.mode, p.size = mode, size }
}

// WithScoring selects weighted (default) or binary co-occurrence.
func WithScoring(s cooccur.Scoring) Option {
	return func(p *Pipeline) { p.scoring = s }
}

// WithRoster fixes the character set. Without it characters are resolved
// automatically from each run's text.
func WithRoster(chars []entity.Character) Option {
	return func(p *Pipeline) { p.roster = chars }
}

// WithMinLength sets the automatic resolver's minimum name length.
func WithMinLength(n int) Option {
	return func(p *Pipeline) { p.minLength = n }
}

// WithParallelism bounds concurrent section runs (n < 1 means unbounded).
func WithParallelism(n int) Option {
	return func(p *Pipeline) { p.parallelism = n }
}

func defaults() Pipeline {
	return Pipeline{
		log:         zap.NewNop().Sugar(),
		threshold:   graph.DefaultThreshold,
		mode:        segment.Sentence,
		scoring:     cooccur.Weighted,
		minLength:   entity.DefaultMinLength,
		parallelism: 4,
	}
}
