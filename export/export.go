// SPDX-License-Identifier: MIT

// Package export renders assembled graphs for outside consumers: a D3
// force-layout JSON document, a source,target,value CSV interaction table,
// and terminal tables.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bookworm/graph"
)

// DefaultGroup is the D3 group of nodes missing from the cluster mapping.
const DefaultGroup = 1

// Node is one D3 node.
type Node struct {
	ID    string `json:"id"`
	Group int    `json:"group"`
}

// Link is one D3 link.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int64  `json:"value"`
}

// Document is the {nodes, links} shape consumed by D3 force layouts.
type Document struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// ToD3 converts g. Every edge endpoint is a node; groups maps node names to
// cluster ids (nil or missing names get DefaultGroup).
func ToD3(g *graph.Graph, groups map[string]int) Document {
	doc := Document{Nodes: make([]Node, 0, g.NodeCount()), Links: make([]Link, 0, g.EdgeCount())}
	for _, n := range g.Nodes {
		grp, ok := groups[n.Name]
		if !ok {
			grp = DefaultGroup
		}
		doc.Nodes = append(doc.Nodes, Node{ID: n.Name, Group: grp})
	}
	for _, e := range g.Edges {
		doc.Links = append(doc.Links, Link{Source: e.Source.Name, Target: e.Target.Name, Value: e.Weight})
	}

	return doc
}

// WriteJSON encodes the D3 document of g to w, indented.
func WriteJSON(w io.Writer, g *graph.Graph, groups map[string]int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToD3(g, groups)); err != nil {
		return errors.Wrap(err, "export: json")
	}

	return nil
}

// WriteCSV writes the interaction table: header source,target,value and one
// row per edge in graph order.
func WriteCSV(w io.Writer, g *graph.Graph) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"source", "target", "value"}); err != nil {
		return errors.Wrap(err, "export: csv")
	}
	for _, e := range g.Edges {
		if err := cw.Write([]string{e.Source.Name, e.Target.Name, strconv.FormatInt(e.Weight, 10)}); err != nil {
			return errors.Wrap(err, "export: csv")
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "export: csv")
}

// Drawer renders a graph colored by community. Community detection itself
// happens elsewhere; clusters maps node names to cluster ids.
type Drawer interface {
	Draw(g *graph.Graph, clusters map[string]int) error
}

// Clusters groups node names by cluster id; ids and names are sorted.
// Nodes missing from the mapping land in DefaultGroup.
func Clusters(g *graph.Graph, clusters map[string]int) ([]int, map[int][]string) {
	byID := make(map[int][]string)
	for _, n := range g.Nodes {
		id, ok := clusters[n.Name]
		if !ok {
			id = DefaultGroup
		}
		byID[id] = append(byID[id], n.Name)
	}
	ids := make([]int, 0, len(byID))
	for id, names := range byID {
		sort.Strings(names)
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids, byID
}
