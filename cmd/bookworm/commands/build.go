// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bookworm/export"
	"github.com/katalvlaran/bookworm/graph"
)

// Output formats accepted by --format.
const (
	formatPrint = "print"
	formatCSV   = "csv"
	formatJSON  = "json"
)

var errUnknownFormat = errors.New("unknown output format")

func (a *app) buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the co-occurrence network of one novel",
		Long: `Build reads the novel at --path (a local file or a URL), resolves its
characters from --roster or automatically, and writes the resulting network.

Formats:
  print  edge table and connected components for the terminal (default)
  csv    source,target,value interaction table
  json   D3 force-layout document {nodes, links}, grouped by component`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			roster, _ := cmd.Flags().GetString("roster")
			id, _ := cmd.Flags().GetString("id")
			format, _ := cmd.Flags().GetString("format")
			if err := checkFormat(format, formatPrint, formatCSV, formatJSON); err != nil {
				return err
			}

			text, err := a.fetch.Fetch(cmd.Context(), path)
			if err != nil {
				return err
			}
			p, err := a.newPipeline(cmd.Context(), roster)
			if err != nil {
				return err
			}
			res, err := p.Build(cmd.Context(), id, text)
			if err != nil {
				return err
			}

			w, closeFn, err := output(cmd)
			if err != nil {
				return err
			}
			if err = write(w, res.Graph, format); err != nil {
				_ = closeFn()
				return err
			}

			return closeFn()
		},
	}
	cmd.Flags().String("path", "", "novel text: local path or URL")
	cmd.Flags().String("roster", "", "character roster (.csv or .yaml); automatic resolution when empty")
	cmd.Flags().String("id", "", "graph id (random UUID when empty)")
	cmd.Flags().String("format", formatPrint, "output format: print, csv or json")
	cmd.Flags().String("out", "", "write output to this file instead of stdout")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

// checkFormat runs before --out is opened so a bad format never truncates it.
func checkFormat(format string, allowed ...string) error {
	if format == "" || slices.Contains(allowed, format) {
		return nil
	}

	return errors.Wrapf(errUnknownFormat, "%q", format)
}

func write(w io.Writer, g *graph.Graph, format string) error {
	switch format {
	case formatPrint, "":
		if err := export.PrintEdges(w, g); err != nil {
			return err
		}
		return export.TerminalDrawer{W: w}.Draw(g, g.Components())
	case formatCSV:
		return export.WriteCSV(w, g)
	case formatJSON:
		return export.WriteJSON(w, g, g.Components())
	default:
		return errors.Wrapf(errUnknownFormat, "%q", format)
	}
}
