// SPDX-License-Identifier: MIT

// Package graph thresholds a co-occurrence matrix into a weighted,
// undirected character graph.
//
// Invariants of an assembled Graph:
//
//   - every edge comes from the strict upper triangle (row < column), so an
//     unordered pair appears at most once and there are no self edges;
//   - every edge weight is strictly greater than the threshold;
//   - the node set is exactly the set of edge endpoints (no isolated nodes).
//
// A Graph is a value: it is never mutated after Assemble returns.
//
// Errors:
//
//	ErrNilCooccurrence - nil input to Assemble.
package graph

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/katalvlaran/bookworm/cooccur"
)

// DefaultThreshold drops pairs scoring 2 or less.
const DefaultThreshold int64 = 2

// ErrNilCooccurrence indicates Assemble was called without a matrix.
var ErrNilCooccurrence = errors.New("graph: nil co-occurrence matrix")

// Node is one character in the graph.
//
// ID is the character's matrix column; Name is its display name.
type Node struct {
	ID   int
	Name string
}

// Edge connects two characters with a co-occurrence weight.
// Source.ID < Target.ID always holds.
type Edge struct {
	Source Node
	Target Node
	Weight int64
}

// Graph is an immutable character network.
type Graph struct {
	// ID labels the graph in comparison tables and exports.
	ID string

	// Nodes in ascending character ID order.
	Nodes []Node

	// Edges in row-major order of the upper triangle.
	Edges []Edge

	index map[string]int // node name -> position in Nodes
}

// Option configures Assemble.
type Option func(*Graph)

// WithID sets the graph identifier (default: a random UUID).
func WithID(id string) Option {
	return func(g *Graph) { g.ID = id }
}

// Assemble keeps every pair (i<j) whose score is strictly greater than
// threshold and builds the Graph of their endpoints.
//
// Implementation:
//   - Stage 1: scan the strict upper triangle row by row.
//   - Stage 2: collect retained endpoints, emit nodes in character ID order.
//
// Complexity: O(n²) over n characters.
func Assemble(c *cooccur.CoOccurrence, threshold int64, opts ...Option) (*Graph, error) {
	if c == nil {
		return nil, ErrNilCooccurrence
	}
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	chars := c.Characters()
	n := c.Size()
	used := make([]bool, n)
	var (
		i, j  int
		score int64
		err   error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if score, err = c.At(i, j); err != nil {
				return nil, errors.Wrapf(err, "graph: assemble (%d,%d)", i, j)
			}
			if score <= threshold {
				continue
			}
			used[i], used[j] = true, true
			g.Edges = append(g.Edges, Edge{
				Source: Node{ID: chars[i].ID, Name: chars[i].Name},
				Target: Node{ID: chars[j].ID, Name: chars[j].Name},
				Weight: score,
			})
		}
	}
	for i = 0; i < n; i++ {
		if used[i] {
			g.Nodes = append(g.Nodes, Node{ID: chars[i].ID, Name: chars[i].Name})
		}
	}
	g.buildIndex()

	return g, nil
}

// New builds a Graph from an explicit edge list; nodes are the endpoints.
// Edges are kept as given, with reversed pairs normalized so Source.ID < Target.ID.
// Self edges and weights <= 0 are dropped.
func New(id string, edges []Edge) *Graph {
	g := &Graph{ID: id}
	seen := make(map[int]Node)
	for _, e := range edges {
		if e.Source.ID == e.Target.ID || e.Weight <= 0 {
			continue
		}
		if e.Source.ID > e.Target.ID {
			e.Source, e.Target = e.Target, e.Source
		}
		g.Edges = append(g.Edges, e)
		seen[e.Source.ID] = e.Source
		seen[e.Target.ID] = e.Target
	}
	for _, nd := range seen {
		g.Nodes = append(g.Nodes, nd)
	}
	sortNodes(g.Nodes)
	g.buildIndex()

	return g
}

func (g *Graph) buildIndex() {
	g.index = make(map[string]int, len(g.Nodes))
	for i, nd := range g.Nodes {
		g.index[nd.Name] = i
	}
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// HasNode reports whether a character with this name is in the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]

	return ok
}

// Weight returns the weight of the edge between two names in either order,
// and whether such an edge exists.
func (g *Graph) Weight(a, b string) (int64, bool) {
	for _, e := range g.Edges {
		if (e.Source.Name == a && e.Target.Name == b) || (e.Source.Name == b && e.Target.Name == a) {
			return e.Weight, true
		}
	}

	return 0, false
}

// Names returns node names in node order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.Nodes))
	for i, nd := range g.Nodes {
		out[i] = nd.Name
	}

	return out
}
