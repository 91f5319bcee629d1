// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bookworm/export"
	"github.com/katalvlaran/bookworm/internal/config"
)

func (a *app) chronoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chrono",
		Short: "Build one network per section of a novel",
		Long: `Chrono splits the novel's units into --sections contiguous, near-equal
sections and builds a network for each. With --cumulative, section k covers
everything from the start of the book through the end of section k.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			roster, _ := cmd.Flags().GetString("roster")
			id, _ := cmd.Flags().GetString("id")
			format, _ := cmd.Flags().GetString("format")
			if err := checkFormat(format, formatPrint, formatJSON); err != nil {
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
			graphs, err := p.Chrono(cmd.Context(), id, text, a.cfg.Chrono.Sections, a.cfg.Chrono.Cumulative)
			if err != nil {
				return err
			}

			w, closeFn, err := output(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			switch format {
			case formatJSON:
				docs := make([]export.Document, len(graphs))
				for i, g := range graphs {
					docs[i] = export.ToD3(g, g.Components())
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")

				return errors.Wrap(enc.Encode(docs), "chrono: json")
			case formatPrint, "":
				for i, g := range graphs {
					if _, err = fmt.Fprintf(w, "section %d\n", i); err != nil {
						return errors.Wrap(err, "chrono: print")
					}
					if err = export.PrintEdges(w, g); err != nil {
						return err
					}
				}

				return nil
			default:
				return errors.Wrapf(errUnknownFormat, "%q", format)
			}
		},
	}
	cmd.Flags().String("path", "", "novel text: local path or URL")
	cmd.Flags().String("roster", "", "character roster (.csv or .yaml); automatic resolution per section when empty")
	cmd.Flags().String("id", "", "prefix for section graph ids")
	cmd.Flags().Int("sections", 0, "number of sections")
	cmd.Flags().Bool("cumulative", false, "sections grow from the start of the book")
	cmd.Flags().String("format", formatPrint, "output format: print or json")
	cmd.Flags().String("out", "", "write output to this file instead of stdout")
	_ = cmd.MarkFlagRequired("path")
	bindFlags(a.v, cmd.Flags(), map[string]string{
		config.KeySections:   "sections",
		config.KeyCumulative: "cumulative",
	})

	return cmd
}
