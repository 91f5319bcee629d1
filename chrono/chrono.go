// SPDX-License-Identifier: MIT

// Package chrono splits a unit sequence into ordered sections and drives one
// pipeline run per section to produce a time series of graphs.
//
// Partitioning follows the array-split rule: with len(units) = q*n + r, the
// first r sections hold q+1 units and the rest hold q. Sizes therefore differ
// by at most one and, when n exceeds the unit count, trailing sections are
// empty. A cumulative split turns section k into the prefix ending where
// partition k ends ("the book so far").
package chrono

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bookworm/graph"
	"github.com/katalvlaran/bookworm/segment"
)

// DefaultSections is the default number of sections.
const DefaultSections = 10

// ErrBadSectionCount indicates n < 1.
var ErrBadSectionCount = errors.New("chrono: section count must be >= 1")

// Section is one sub-range of the unit sequence.
type Section struct {
	Index int
	Units []segment.Unit
}

// Split partitions units into n sections (cumulative prefixes if requested).
// Sections alias the input slice; callers must not mutate units afterwards.
//
// Complexity: O(n).
func Split(units []segment.Unit, n int, cumulative bool) ([]Section, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrBadSectionCount, "n=%d", n)
	}
	q, r := len(units)/n, len(units)%n
	out := make([]Section, n)
	start := 0
	for k := 0; k < n; k++ {
		end := start + q
		if k < r {
			end++
		}
		from := start
		if cumulative {
			from = 0
		}
		out[k] = Section{Index: k, Units: units[from:end:end]}
		start = end
	}

	return out, nil
}

// BuildFunc runs the pipeline on one section.
type BuildFunc func(ctx context.Context, s Section) (*graph.Graph, error)

// Run builds one graph per section, at most limit at a time (limit < 1 means
// no limit). Result i belongs to section i. The first failure cancels the
// remaining runs and is returned with its section index.
func Run(ctx context.Context, sections []Section, limit int, build BuildFunc) ([]*graph.Graph, error) {
	out := make([]*graph.Graph, len(sections))
	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range sections {
		s := sections[i]
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := build(gCtx, s)
			if err != nil {
				return errors.Wrapf(err, "chrono: section %d", s.Index)
			}
			out[i] = res // distinct index per goroutine

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
