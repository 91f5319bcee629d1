// SPDX-License-Identifier: MIT

// Package commands implements the bookworm command tree.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/bookworm/entity"
	"github.com/katalvlaran/bookworm/internal/config"
	"github.com/katalvlaran/bookworm/internal/logger"
	"github.com/katalvlaran/bookworm/nlp"
	"github.com/katalvlaran/bookworm/pipeline"
	"github.com/katalvlaran/bookworm/source"
)

// Version is stamped at link time with -ldflags "-X .../commands.Version=...".
var Version = "dev"

// app is the state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	cfg      *config.Config
	log      *zap.SugaredLogger
	fetch    *source.Fetcher
	analyzer nlp.Analyzer
}

// NewRootCmd builds the command tree with a fresh viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "bookworm",
		Short: "Build character co-occurrence networks from novels",
		Long: `bookworm reads a novel, finds its characters, counts how often they
appear together in the same sentence or window, and turns the counts into a
weighted network.

Examples:
  bookworm build --path novel.txt --roster characters.csv
  bookworm build --path https://example.org/novel.txt --format json --out net.json
  bookworm chrono --path novel.txt --sections 10 --cumulative
  bookworm compare a.txt b.txt c.txt
  bookworm density --path novel.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				logger.Sync(a.log)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./bookworm.yaml or $XDG_CONFIG_HOME/bookworm/bookworm.yaml)")
	pf.Int64("threshold", 0, "keep edges whose score is strictly greater than this")
	pf.String("mode", "", "unit mode: sentence, word, char or sliding")
	pf.Int("size", 0, "unit size for word, char and sliding modes (0 means the mode default)")
	pf.String("scoring", "", "co-occurrence scoring: weighted or binary")
	pf.Int("min-length", 0, "minimum rune length of automatically resolved names")
	pf.Int("parallelism", 0, "maximum concurrent section or graph builds")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.Bool("log-json", false, "emit JSON logs")
	bindFlags(a.v, pf, map[string]string{
		config.KeyThreshold:   "threshold",
		config.KeySegmentMode: "mode",
		config.KeySegmentSize: "size",
		config.KeyScoreMode:   "scoring",
		config.KeyMinLength:   "min-length",
		config.KeyParallelism: "parallelism",
		config.KeyLogLevel:    "log-level",
		config.KeyLogJSON:     "log-json",
	})

	root.AddCommand(
		a.buildCmd(),
		a.chronoCmd(),
		a.compareCmd(),
		a.densityCmd(),
		versionCmd(),
	)

	return root
}

// Execute runs the command tree under ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// BindPFlag only fails for a nil flag, which would be a typo here.
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(errors.Wrapf(err, "bind %s", name))
		}
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logger.New(logger.Options{JSON: cfg.Log.JSON, Level: cfg.Log.Level, Out: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debugw("config loaded", "file", used)
	}
	a.fetch = source.NewFetcher(a.log)

	return nil
}

// loadAnalyzer loads the Punkt model on first use.
func (a *app) loadAnalyzer() (nlp.Analyzer, error) {
	if a.analyzer != nil {
		return a.analyzer, nil
	}
	en, err := nlp.New()
	if err != nil {
		return nil, err
	}
	a.analyzer = en

	return en, nil
}

// newPipeline builds a Pipeline from the resolved config. An empty rosterPath
// selects automatic character resolution.
func (a *app) newPipeline(ctx context.Context, rosterPath string) (*pipeline.Pipeline, error) {
	mode, err := a.cfg.SegmentMode()
	if err != nil {
		return nil, err
	}
	scoring, err := a.cfg.Scoring()
	if err != nil {
		return nil, err
	}
	an, err := a.loadAnalyzer()
	if err != nil {
		return nil, err
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(a.log),
		pipeline.WithThreshold(a.cfg.Threshold),
		pipeline.WithSegmentation(mode, a.cfg.Segment.Size),
		pipeline.WithScoring(scoring),
		pipeline.WithMinLength(a.cfg.Resolve.MinLength),
		pipeline.WithParallelism(a.cfg.Parallelism),
	}
	if rosterPath != "" {
		var chars []entity.Character
		if chars, err = a.fetch.LoadRoster(ctx, rosterPath); err != nil {
			return nil, err
		}
		a.log.Infow("roster loaded", "path", rosterPath, "characters", len(chars))
		opts = append(opts, pipeline.WithRoster(chars))
	}

	return pipeline.New(an, opts...)
}

// output returns the destination named by --out, or the command's stdout.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	path, _ := cmd.Flags().GetString("out")
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "create %s", path)
	}

	return f, f.Close, nil
}
