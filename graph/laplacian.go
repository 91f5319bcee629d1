// SPDX-License-Identifier: MIT

package graph

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bookworm/matrix"
)

func sortNodes(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
}

// Laplacian returns L = D − A over the graph's nodes, in node order.
//
// With weighted=false every edge contributes 1 (combinatorial Laplacian of
// the structure); with weighted=true it contributes its weight.
//
// Behavior highlights:
//   - L is symmetric with zero row sums; its spectrum is real and ≥ 0.
//   - An empty graph yields a 0×0 matrix.
//
// Complexity: O(|V|² + |E|).
func (g *Graph) Laplacian(weighted bool) (*matrix.Dense, error) {
	n := len(g.Nodes)
	l, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, errors.Wrap(err, "graph: laplacian")
	}
	pos := make(map[int]int, n)
	for i, nd := range g.Nodes {
		pos[nd.ID] = i
	}

	var (
		u, v   int
		ok     bool
		w      float64
		ferr   error
		update = func(i, j int, delta float64) {
			if ferr == nil {
				ferr = l.Inc(i, j, delta)
			}
		}
	)
	for _, e := range g.Edges {
		if u, ok = pos[e.Source.ID]; !ok {
			return nil, errors.Newf("graph: laplacian: edge source %q is not a node", e.Source.Name)
		}
		if v, ok = pos[e.Target.ID]; !ok {
			return nil, errors.Newf("graph: laplacian: edge target %q is not a node", e.Target.Name)
		}
		w = 1
		if weighted {
			w = float64(e.Weight)
		}
		update(u, u, w)
		update(v, v, w)
		update(u, v, -w)
		update(v, u, -w)
	}
	if ferr != nil {
		return nil, errors.Wrap(ferr, "graph: laplacian")
	}

	return l, nil
}
