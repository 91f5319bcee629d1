// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bookworm/export"
	"github.com/katalvlaran/bookworm/graph"
	"github.com/katalvlaran/bookworm/internal/config"
	"github.com/katalvlaran/bookworm/pipeline"
	"github.com/katalvlaran/bookworm/spectral"
)

var errDuplicateName = errors.New("compare: two inputs share a name")

func (a *app) compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <path> <path>...",
		Short: "Spectral dissimilarity between the networks of several novels",
		Long: `Compare builds one network per input and prints the pairwise spectral
dissimilarity table. Each input is labeled by its file name without extension.
Characters are resolved automatically unless --roster is given, in which case
the same roster is used for every input.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, _ := cmd.Flags().GetString("roster")
			p, err := a.newPipeline(cmd.Context(), roster)
			if err != nil {
				return err
			}
			graphs, err := a.buildAll(cmd.Context(), p, args)
			if err != nil {
				return err
			}

			var opts []spectral.Option
			if a.cfg.Spectral.Weighted {
				opts = append(opts, spectral.WithWeighted())
			}
			opts = append(opts, spectral.WithParallelism(a.cfg.Parallelism))
			table, err := spectral.BuildTable(cmd.Context(), graphs, opts...)
			if err != nil {
				return err
			}

			return export.PrintComparison(cmd.OutOrStdout(), table)
		},
	}
	cmd.Flags().String("roster", "", "character roster shared by every input")
	cmd.Flags().Bool("weighted", false, "use the weighted Laplacian")
	bindFlags(a.v, cmd.Flags(), map[string]string{config.KeyWeighted: "weighted"})

	return cmd
}

// buildAll fetches and builds every input concurrently, keyed by label.
func (a *app) buildAll(ctx context.Context, p *pipeline.Pipeline, inputs []string) (map[string]*graph.Graph, error) {
	graphs := make(map[string]*graph.Graph, len(inputs))
	for _, in := range inputs {
		name := label(in)
		if _, dup := graphs[name]; dup {
			return nil, errors.Wrapf(errDuplicateName, "%q", name)
		}
		graphs[name] = nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.cfg.Parallelism, 1))
	for _, in := range inputs {
		g.Go(func() error {
			text, err := a.fetch.Fetch(ctx, in)
			if err != nil {
				return err
			}
			name := label(in)
			res, err := p.Build(ctx, name, text)
			if err != nil {
				return errors.Wrapf(err, "compare: %s", in)
			}
			mu.Lock()
			graphs[name] = res.Graph
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return graphs, nil
}

func label(input string) string {
	base := filepath.Base(strings.TrimRight(input, "/"))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
