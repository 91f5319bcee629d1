// SPDX-License-Identifier: MIT

package export

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/katalvlaran/bookworm/graph"
	"github.com/katalvlaran/bookworm/spectral"
)

// EdgeTable returns the edge list as pterm table data with a header row.
func EdgeTable(g *graph.Graph) pterm.TableData {
	data := pterm.TableData{{"source", "target", "value"}}
	for _, e := range g.Edges {
		data = append(data, []string{e.Source.Name, e.Target.Name, strconv.FormatInt(e.Weight, 10)})
	}

	return data
}

// PrintEdges renders the edge table of g to w.
func PrintEdges(w io.Writer, g *graph.Graph) error {
	return render(w, EdgeTable(g))
}

// PrintComparison renders a dissimilarity table with names on both axes.
func PrintComparison(w io.Writer, t *spectral.Table) error {
	header := append([]string{""}, t.Names...)
	data := pterm.TableData{header}
	for i, name := range t.Names {
		row := make([]string, 0, len(t.Names)+1)
		row = append(row, name)
		for j := range t.Names {
			row = append(row, strconv.FormatFloat(t.Scores[i][j], 'f', 4, 64))
		}
		data = append(data, row)
	}

	return render(w, data)
}

func render(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "export: table")
	}
	if _, err = io.WriteString(w, out+"\n"); err != nil {
		return errors.Wrap(err, "export: table")
	}

	return nil
}

// TerminalDrawer lists each community on its own colored line.
type TerminalDrawer struct {
	W io.Writer
}

var _ Drawer = TerminalDrawer{}

var palette = []pterm.Color{
	pterm.FgLightCyan, pterm.FgLightGreen, pterm.FgLightMagenta,
	pterm.FgYellow, pterm.FgLightBlue, pterm.FgLightRed,
}

// Draw implements Drawer.
func (d TerminalDrawer) Draw(g *graph.Graph, clusters map[string]int) error {
	ids, byID := Clusters(g, clusters)
	for k, id := range ids {
		color := palette[k%len(palette)]
		line := color.Sprint("community "+strconv.Itoa(id)) + ": " + strings.Join(byID[id], ", ") + "\n"
		if _, err := io.WriteString(d.W, line); err != nil {
			return errors.Wrap(err, "export: draw")
		}
	}

	return nil
}
