// SPDX-License-Identifier: MIT

// Package logger builds the zap logger used by the bookworm CLI.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned for a level name zap does not recognise.
var ErrUnknownLevel = errors.New("logger: unknown level")

// Options selects encoder, level and destination.
type Options struct {
	// JSON switches to the production JSON encoder.
	JSON bool
	// Level is a zap level name; empty means info.
	Level string
	// Out defaults to stderr so stdout stays free for graph output.
	Out io.Writer
}

// New returns a sugared logger for opts.
func New(opts Options) (*zap.SugaredLogger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var enc zapcore.Encoder
	if opts.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(out), zap.NewAtomicLevelAt(level))

	return zap.New(core).Sugar(), nil
}

// ParseLevel maps a level name to its zapcore value.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return l, errors.Wrapf(ErrUnknownLevel, "%q", name)
	}

	return l, nil
}

// Sync flushes log, ignoring the EINVAL stderr returns on some platforms.
func Sync(log *zap.SugaredLogger) {
	_ = log.Sync()
}
