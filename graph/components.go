// SPDX-License-Identifier: MIT

package graph

import "sort"

// Neighbors returns the names adjacent to name, sorted. Unknown names have
// no neighbors.
func (g *Graph) Neighbors(name string) []string {
	var out []string
	for _, e := range g.Edges {
		switch name {
		case e.Source.Name:
			out = append(out, e.Target.Name)
		case e.Target.Name:
			out = append(out, e.Source.Name)
		}
	}
	sort.Strings(out)

	return out
}

// walker holds breadth-first state for Components.
type walker struct {
	adj   map[string][]string
	queue []string
	comp  map[string]int
}

// Components labels every node with its connected component. Components
// are numbered from 1 in the order of their lowest character ID, so the
// result plugs straight into D3 groups.
//
// Complexity: O(V + E).
func (g *Graph) Components() map[string]int {
	w := &walker{
		adj:  make(map[string][]string, len(g.Nodes)),
		comp: make(map[string]int, len(g.Nodes)),
	}
	for _, e := range g.Edges {
		w.adj[e.Source.Name] = append(w.adj[e.Source.Name], e.Target.Name)
		w.adj[e.Target.Name] = append(w.adj[e.Target.Name], e.Source.Name)
	}

	next := 1
	for _, nd := range g.Nodes {
		if _, seen := w.comp[nd.Name]; seen {
			continue
		}
		w.flood(nd.Name, next)
		next++
	}

	return w.comp
}

// flood visits everything reachable from start, labeling it id.
func (w *walker) flood(start string, id int) {
	w.comp[start] = id
	w.queue = append(w.queue[:0], start)
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		for _, nbr := range w.adj[cur] {
			if _, seen := w.comp[nbr]; !seen {
				w.comp[nbr] = id
				w.queue = append(w.queue, nbr)
			}
		}
	}
}
