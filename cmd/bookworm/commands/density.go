// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) densityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "density",
		Short: "Characters per word token of a novel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			roster, _ := cmd.Flags().GetString("roster")

			text, err := a.fetch.Fetch(cmd.Context(), path)
			if err != nil {
				return err
			}
			p, err := a.newPipeline(cmd.Context(), roster)
			if err != nil {
				return err
			}
			res, err := p.Build(cmd.Context(), "", text)
			if err != nil {
				return err
			}
			d, err := p.Density(text, res.Graph)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", d)

			return err
		},
	}
	cmd.Flags().String("path", "", "novel text: local path or URL")
	cmd.Flags().String("roster", "", "character roster (.csv or .yaml)")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
