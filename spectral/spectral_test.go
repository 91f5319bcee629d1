// SPDX-License-Identifier: MIT

package spectral_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bookworm/graph"
	"github.com/katalvlaran/bookworm/spectral"
)

func node(id int, name string) graph.Node { return graph.Node{ID: id, Name: name} }

func path3() *graph.Graph {
	a, b, c := node(0, "A"), node(1, "B"), node(2, "C")
	return graph.New("path", []graph.Edge{{Source: a, Target: b, Weight: 2}, {Source: b, Target: c, Weight: 1}})
}

func triangle() *graph.Graph {
	a, b, c := node(0, "A"), node(1, "B"), node(2, "C")
	return graph.New("triangle", []graph.Edge{
		{Source: a, Target: b, Weight: 1},
		{Source: b, Target: c, Weight: 1},
		{Source: a, Target: c, Weight: 1},
	})
}

func TestSpectrum_Path(t *testing.T) {
	s, err := spectral.Spectrum(path3())
	require.NoError(t, err)
	require.Len(t, s, 3)
	assert.InDelta(t, 0, s[0], 1e-8)
	assert.InDelta(t, 1, s[1], 1e-8)
	assert.InDelta(t, 3, s[2], 1e-8)
	assert.GreaterOrEqual(t, s[0], 0.0)
}

func TestSpectrum_Weighted(t *testing.T) {
	// L = [[2,-2,0],[-2,3,-1],[0,-1,1]]; trace 6, det 0
	s, err := spectral.Spectrum(path3(), spectral.WithWeighted())
	require.NoError(t, err)
	assert.InDelta(t, 0, s[0], 1e-8)
	assert.InDelta(t, 6, s[0]+s[1]+s[2], 1e-8)
}

func TestSelectK(t *testing.T) {
	assert.Equal(t, 3, spectral.SelectK([]float64{0, 1, 3})) // 1/4 < 0.9, 4/4
	assert.Equal(t, 2, spectral.SelectK([]float64{5, 4.5, 0.5}))
	assert.Equal(t, 1, spectral.SelectK([]float64{19, 1}))
	assert.Equal(t, 4, spectral.SelectK([]float64{0, 0, 0, 0}))
	assert.Equal(t, 0, spectral.SelectK(nil))

	for _, s := range [][]float64{{1}, {0, 0.5, 2, 7}, {3, 3, 3}} {
		k := spectral.SelectK(s)
		assert.GreaterOrEqual(t, k, 1)
		assert.LessOrEqual(t, k, len(s))
	}
}

func TestCompare_SymmetricAndSelf(t *testing.T) {
	p, err := spectral.Spectrum(path3())
	require.NoError(t, err)
	tr, err := spectral.Spectrum(triangle())
	require.NoError(t, err)

	assert.Zero(t, spectral.Compare(p, p))
	assert.Equal(t, spectral.Compare(p, tr), spectral.Compare(tr, p))
	assert.Greater(t, spectral.Compare(p, tr), 0.0)

	// triangle spectrum {0,3,3}: k=3; path {0,1,3}: k=3; score = (1-3)² = 4
	assert.InDelta(t, 4.0, spectral.Compare(p, tr), 1e-8)
}

func TestCompareGraphs_Empty(t *testing.T) {
	empty := graph.New("empty", nil)
	score, err := spectral.CompareGraphs(empty, path3())
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestBuildTable(t *testing.T) {
	graphs := map[string]*graph.Graph{
		"triangle": triangle(),
		"path":     path3(),
		"empty":    graph.New("empty", nil),
	}
	tbl, err := spectral.BuildTable(context.Background(), graphs, spectral.WithParallelism(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "path", "triangle"}, tbl.Names)
	for i := range tbl.Names {
		assert.Zero(t, tbl.Scores[i][i])
		for j := range tbl.Names {
			assert.Equal(t, tbl.Scores[i][j], tbl.Scores[j][i])
		}
	}
	v, ok := tbl.At("path", "triangle")
	require.True(t, ok)
	assert.InDelta(t, 4.0, v, 1e-8)
	_, ok = tbl.At("path", "missing")
	assert.False(t, ok)
}
