// SPDX-License-Identifier: MIT

// Package pipeline runs the full co-occurrence network construction:
// raw text → units → characters → presence → co-occurrence → graph.
//
// A Pipeline holds configuration only. Every Build call works on freshly
// allocated data, so one Pipeline may serve concurrent calls.
package pipeline

import (
	"context"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/bookworm/chrono"
	"github.com/katalvlaran/bookworm/cooccur"
	"github.com/katalvlaran/bookworm/entity"
	"github.com/katalvlaran/bookworm/graph"
	"github.com/katalvlaran/bookworm/nlp"
	"github.com/katalvlaran/bookworm/segment"
)

// Pipeline is a configured co-occurrence network builder.
type Pipeline struct {
	analyzer nlp.Analyzer
	log      *zap.SugaredLogger

	threshold   int64
	mode        segment.Mode
	size        int
	scoring     cooccur.Scoring
	roster      []entity.Character
	minLength   int
	parallelism int
}

// Result carries the graph together with the intermediate products of one run.
type Result struct {
	Graph        *graph.Graph
	Units        []segment.Unit
	Characters   []entity.Character
	CoOccurrence *cooccur.CoOccurrence
}

// New returns a Pipeline using analyzer a.
func New(a nlp.Analyzer, opts ...Option) (*Pipeline, error) {
	if a == nil {
		return nil, errors.New("pipeline: analyzer is required")
	}
	p := defaults()
	p.analyzer = a
	for _, opt := range opts {
		opt(&p)
	}

	return &p, nil
}

// Threshold reports the configured edge threshold.
func (p *Pipeline) Threshold() int64 { return p.threshold }

// Segment splits text with the configured mode.
func (p *Pipeline) Segment(text string) ([]segment.Unit, error) {
	seq, err := segment.Segment(text, p.mode, p.size, p.analyzer)
	if err != nil {
		return nil, err
	}
	units, err := seq.Units()
	if err != nil {
		return nil, err
	}
	p.log.Debugw("segmented", "mode", p.mode.String(), "units", len(units))

	return units, nil
}

// Build runs the whole pipeline on text. The graph is labeled id (a
// random UUID when id is empty).
//
// Empty text or zero characters yield an empty graph, not an error.
func (p *Pipeline) Build(ctx context.Context, id, text string) (*Result, error) {
	units, err := p.Segment(text)
	if err != nil {
		return nil, err
	}

	return p.BuildUnits(ctx, id, units)
}

// BuildUnits runs resolution, presence, scoring and assembly over
// pre-segmented units. Automatic resolution reads only these units.
func (p *Pipeline) BuildUnits(ctx context.Context, id string, units []segment.Unit) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	chars, err := p.resolve(units)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	presence, err := cooccur.BuildPresence(units, chars)
	if err != nil {
		return nil, err
	}
	cooc, err := cooccur.Score(presence, p.scoring)
	if err != nil {
		return nil, err
	}

	var gopts []graph.Option
	if id != "" {
		gopts = append(gopts, graph.WithID(id))
	}
	g, err := graph.Assemble(cooc, p.threshold, gopts...)
	if err != nil {
		return nil, err
	}
	p.log.Infow("graph assembled",
		"graph", g.ID,
		"units", len(units),
		"characters", len(chars),
		"edges", g.EdgeCount(),
		"threshold", p.threshold)

	return &Result{Graph: g, Units: units, Characters: chars, CoOccurrence: cooc}, nil
}

func (p *Pipeline) resolve(units []segment.Unit) ([]entity.Character, error) {
	if p.roster != nil {
		return p.roster, nil
	}
	text := strings.Join(segment.Texts(units), " ")
	chars, err := entity.ResolveAutomatic(text, p.analyzer, entity.WithMinLength(p.minLength))
	if err != nil {
		return nil, errors.Wrap(err, "pipeline: resolve characters")
	}

	return chars, nil
}

// Chrono segments text once, splits the units into n sections and builds
// one graph per section concurrently. Graph i is labeled "<id>#<i>".
func (p *Pipeline) Chrono(ctx context.Context, id, text string, n int, cumulative bool) ([]*graph.Graph, error) {
	units, err := p.Segment(text)
	if err != nil {
		return nil, err
	}
	sections, err := chrono.Split(units, n, cumulative)
	if err != nil {
		return nil, err
	}
	p.log.Infow("chronological run", "sections", n, "cumulative", cumulative, "units", len(units))

	return chrono.Run(ctx, sections, p.parallelism, func(ctx context.Context, s chrono.Section) (*graph.Graph, error) {
		res, err := p.BuildUnits(ctx, sectionID(id, s.Index), s.Units)
		if err != nil {
			return nil, err
		}
		p.log.Debugw("section built", "section", s.Index, "units", len(s.Units), "edges", res.Graph.EdgeCount())

		return res.Graph, nil
	})
}

func sectionID(id string, k int) string {
	if id == "" {
		return ""
	}

	return id + "#" + strconv.Itoa(k)
}

// Density is the number of graph nodes per token of text, punctuation
// tokens included; a text without tokens has density 0.
func (p *Pipeline) Density(text string, g *graph.Graph) (float64, error) {
	if g == nil {
		return 0, errors.New("pipeline: nil graph")
	}
	words, err := p.analyzer.Words(text)
	if err != nil {
		return 0, errors.Wrap(err, "pipeline: density")
	}
	if len(words) == 0 {
		return 0, nil
	}

	return float64(g.NodeCount()) / float64(len(words)), nil
}
