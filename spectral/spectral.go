// SPDX-License-Identifier: MIT

// Package spectral compares character graphs by their Laplacian spectra.
//
// The dissimilarity of two graphs is Σ (λ1[i] − λ2[i])² over the first
// k = min(SelectK(λ1), SelectK(λ2)) ascending eigenvalues, where SelectK is
// the shortest prefix carrying ≥ 90% of the spectral sum. Lower is more
// similar; identical truncated spectra score exactly 0.
package spectral

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bookworm/graph"
	"github.com/katalvlaran/bookworm/matrix"
)

// EnergyFraction is the share of the spectral sum SelectK must cover.
const EnergyFraction = 0.9

// zeroClamp maps tiny negative eigenvalues (rounding noise on a positive
// semi-definite Laplacian) to 0.
const zeroClamp = 1e-9

// Option configures spectrum computation.
type Option func(*options)

type options struct {
	weighted    bool
	parallelism int
}

// WithWeighted uses edge weights in the Laplacian instead of 1 per edge.
func WithWeighted() Option {
	return func(o *options) { o.weighted = true }
}

// WithParallelism bounds concurrent work in Table (n < 1 means unbounded).
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Spectrum returns the ascending Laplacian eigenvalues of g.
// Complexity: O(sweeps * |V|³).
func Spectrum(g *graph.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, errors.New("spectral: nil graph")
	}
	o := collect(opts)
	l, err := g.Laplacian(o.weighted)
	if err != nil {
		return nil, err
	}
	vals, err := matrix.EigenValues(l, matrix.DefaultEigenTol, matrix.DefaultMaxSweeps)
	if err != nil {
		return nil, errors.Wrapf(err, "spectral: graph %q", g.ID)
	}
	for i, v := range vals {
		if v < 0 && v > -zeroClamp {
			vals[i] = 0
		}
	}

	return vals, nil
}

// SelectK returns the smallest k such that the first k values sum to at
// least EnergyFraction of the total. A zero total returns len(spectrum);
// so does an empty spectrum (0).
func SelectK(spectrum []float64) int {
	var total float64
	for _, v := range spectrum {
		total += v
	}
	if total == 0 {
		return len(spectrum)
	}
	var running float64
	for i, v := range spectrum {
		running += v
		if running/total >= EnergyFraction {
			return i + 1
		}
	}

	return len(spectrum)
}

// Compare scores two spectra: Σ (a[i] − b[i])² for i < min(SelectK(a), SelectK(b)).
func Compare(a, b []float64) float64 {
	k := min(SelectK(a), SelectK(b))
	var score, d float64
	for i := 0; i < k; i++ {
		d = a[i] - b[i]
		score += d * d
	}

	return score
}

// CompareGraphs computes both spectra and compares them.
func CompareGraphs(g1, g2 *graph.Graph, opts ...Option) (float64, error) {
	s1, err := Spectrum(g1, opts...)
	if err != nil {
		return 0, err
	}
	s2, err := Spectrum(g2, opts...)
	if err != nil {
		return 0, err
	}

	return Compare(s1, s2), nil
}

// Table is a symmetric dissimilarity matrix keyed by graph name in both
// row and column order.
type Table struct {
	Names  []string
	Scores [][]float64
}

// At returns the score between two named graphs.
func (t *Table) At(a, b string) (float64, bool) {
	i, j := sort.SearchStrings(t.Names, a), sort.SearchStrings(t.Names, b)
	if i >= len(t.Names) || t.Names[i] != a || j >= len(t.Names) || t.Names[j] != b {
		return 0, false
	}

	return t.Scores[i][j], true
}

// BuildTable compares every pair of named graphs. Names are sorted; the
// diagonal is 0 and Scores[i][j] == Scores[j][i].
//
// Implementation:
//   - Stage 1: spectra computed concurrently (errgroup, bounded by WithParallelism).
//   - Stage 2: the upper triangle is filled from the cached spectra and mirrored.
//
// Complexity: O(N * sweeps * |V|³ + N² * |V|).
func BuildTable(ctx context.Context, graphs map[string]*graph.Graph, opts ...Option) (*Table, error) {
	o := collect(opts)
	names := make([]string, 0, len(graphs))
	for n := range graphs {
		names = append(names, n)
	}
	sort.Strings(names)

	spectra := make([][]float64, len(names))
	eg, egCtx := errgroup.WithContext(ctx)
	if o.parallelism > 0 {
		eg.SetLimit(o.parallelism)
	}
	for i, name := range names {
		g := graphs[name]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			s, err := Spectrum(g, opts...)
			if err != nil {
				return errors.Wrapf(err, "spectral: %s", name)
			}
			spectra[i] = s

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	scores := make([][]float64, len(names))
	for i := range scores {
		scores[i] = make([]float64, len(names))
	}
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			v := Compare(spectra[i], spectra[j])
			scores[i][j], scores[j][i] = v, v
		}
	}

	return &Table{Names: names, Scores: scores}, nil
}
