// SPDX-License-Identifier: MIT

// Package config layers bookworm settings: defaults, then a bookworm.yaml or
// bookworm.toml file (working directory, then $XDG_CONFIG_HOME/bookworm),
// then BOOKWORM_* environment variables, then command-line flags bound by
// the caller.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bookworm/chrono"
	"github.com/katalvlaran/bookworm/cooccur"
	"github.com/katalvlaran/bookworm/entity"
	"github.com/katalvlaran/bookworm/graph"
	"github.com/katalvlaran/bookworm/segment"
)

// EnvPrefix prefixes every environment override: segment.mode -> BOOKWORM_SEGMENT_MODE.
const EnvPrefix = "BOOKWORM"

// Keys.
const (
	KeyThreshold   = "threshold"
	KeySegmentMode = "segment.mode"
	KeySegmentSize = "segment.size"
	KeyMinLength   = "resolve.min_length"
	KeyScoreMode   = "score.mode"
	KeySections    = "chrono.sections"
	KeyCumulative  = "chrono.cumulative"
	KeyWeighted    = "spectral.weighted"
	KeyParallelism = "parallelism"
	KeyLogJSON     = "log.json"
	KeyLogLevel    = "log.level"
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the resolved configuration.
type Config struct {
	Threshold   int64          `mapstructure:"threshold"`
	Segment     SegmentConfig  `mapstructure:"segment"`
	Resolve     ResolveConfig  `mapstructure:"resolve"`
	Score       ScoreConfig    `mapstructure:"score"`
	Chrono      ChronoConfig   `mapstructure:"chrono"`
	Spectral    SpectralConfig `mapstructure:"spectral"`
	Parallelism int            `mapstructure:"parallelism"`
	Log         LogConfig      `mapstructure:"log"`
}

// SegmentConfig selects the unit granularity.
type SegmentConfig struct {
	Mode string `mapstructure:"mode"`
	Size int    `mapstructure:"size"`
}

// ResolveConfig tunes automatic character resolution.
type ResolveConfig struct {
	MinLength int `mapstructure:"min_length"`
}

// ScoreConfig selects the co-occurrence formula.
type ScoreConfig struct {
	Mode string `mapstructure:"mode"`
}

// ChronoConfig tunes chronological sectioning.
type ChronoConfig struct {
	Sections   int  `mapstructure:"sections"`
	Cumulative bool `mapstructure:"cumulative"`
}

// SpectralConfig tunes graph comparison.
type SpectralConfig struct {
	Weighted bool `mapstructure:"weighted"`
}

// LogConfig selects the log encoder and level.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyThreshold, graph.DefaultThreshold)
	v.SetDefault(KeySegmentMode, segment.Sentence.String())
	v.SetDefault(KeySegmentSize, 0)
	v.SetDefault(KeyMinLength, entity.DefaultMinLength)
	v.SetDefault(KeyScoreMode, cooccur.Weighted.String())
	v.SetDefault(KeySections, chrono.DefaultSections)
	v.SetDefault(KeyCumulative, false)
	v.SetDefault(KeyWeighted, false)
	v.SetDefault(KeyParallelism, 4)
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyLogLevel, "info")
}

// New returns a viper instance with defaults, env binding and the config
// search path. Extra directories are searched first.
func New(dirs ...string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	v.SetConfigName("bookworm")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.AddConfigPath(".")
	if xdg := configHome(); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "bookworm"))
	}

	return v
}

func configHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config")
}

// Load reads the config file if one exists, unmarshals and validates.
// A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "config: read %s", v.ConfigFileUsed())
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := c.SegmentMode(); err != nil {
		return errors.Wrap(err, "config: segment.mode")
	}
	if _, err := c.Scoring(); err != nil {
		return errors.Wrap(err, "config: score.mode")
	}
	switch {
	case c.Segment.Size < 0:
		return errors.Wrapf(ErrInvalid, "segment.size=%d", c.Segment.Size)
	case c.Resolve.MinLength < 1:
		return errors.Wrapf(ErrInvalid, "resolve.min_length=%d", c.Resolve.MinLength)
	case c.Chrono.Sections < 1:
		return errors.Wrapf(ErrInvalid, "chrono.sections=%d", c.Chrono.Sections)
	}

	return nil
}

// SegmentMode parses Segment.Mode.
func (c *Config) SegmentMode() (segment.Mode, error) {
	return segment.ParseMode(c.Segment.Mode)
}

// Scoring parses Score.Mode.
func (c *Config) Scoring() (cooccur.Scoring, error) {
	return cooccur.ParseScoring(c.Score.Mode)
}
