// SPDX-License-Identifier: MIT

package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bookworm/internal/logger"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{JSON: true, Level: "debug", Out: &buf})
	require.NoError(t, err)
	log.Debugw("graph built", "nodes", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "graph built", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, float64(3), entry["nodes"])
}

func TestNew_ConsoleFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "warn", Out: &buf})
	require.NoError(t, err)
	log.Infow("hidden")
	log.Warnw("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, l)

	l, err = logger.ParseLevel(" ERROR ")
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, l)

	_, err = logger.ParseLevel("loud")
	assert.True(t, errors.Is(err, logger.ErrUnknownLevel))
}
