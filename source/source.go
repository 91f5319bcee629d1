// SPDX-License-Identifier: MIT

// Package source acquires raw inputs for the pipeline: novel text from a
// local path or URL, and character rosters in CSV or YAML form.
//
// Inputs are resolved with go-getter detection: plain paths (relative,
// absolute, ~/) are read directly, anything else (http(s), s3, git, ...) is
// downloaded into a temporary file first. Every failure to reach an input
// wraps ErrInputNotFound and names the input.
package source

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-getter"
	"go.uber.org/zap"

	"github.com/katalvlaran/bookworm/entity"
)

var (
	// ErrInputNotFound indicates a text or roster path/URL that cannot be read.
	ErrInputNotFound = errors.New("source: input not found")

	// ErrMalformedRoster is entity.ErrMalformedRoster, re-exported for callers
	// that only import source.
	ErrMalformedRoster = entity.ErrMalformedRoster
)

// Fetcher reads inputs by path or URL.
type Fetcher struct {
	log *zap.SugaredLogger
	pwd string
}

// NewFetcher returns a Fetcher resolving relative paths against the working
// directory. A nil logger is replaced by a no-op one.
func NewFetcher(log *zap.SugaredLogger) *Fetcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}

	return &Fetcher{log: log, pwd: pwd}
}

// Fetch returns the content of input as a string.
func (f *Fetcher) Fetch(ctx context.Context, input string) (string, error) {
	b, err := f.FetchBytes(ctx, input)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// FetchBytes returns the raw content of input.
//
// Errors: ErrInputNotFound (wrapped with the input and a hint).
func (f *Fetcher) FetchBytes(ctx context.Context, input string) ([]byte, error) {
	if strings.TrimSpace(input) == "" {
		return nil, notFound(input, errors.New("empty input"))
	}
	if local, ok := f.localPath(input); ok {
		f.log.Debugw("reading local input", "input", input, "path", local)
		b, err := os.ReadFile(local)
		if err != nil {
			return nil, notFound(input, err)
		}
		return b, nil
	}

	detected, err := getter.Detect(input, f.pwd, getter.Detectors)
	if err != nil {
		return nil, notFound(input, err)
	}
	f.log.Infow("fetching remote input", "input", input, "detected", detected)

	tmp, err := os.MkdirTemp("", "bookworm-fetch-*")
	if err != nil {
		return nil, errors.Wrap(err, "source: temp dir")
	}
	defer os.RemoveAll(tmp)

	dst := filepath.Join(tmp, "input")
	client := &getter.Client{
		Ctx:     ctx,
		Src:     detected,
		Dst:     dst,
		Mode:    getter.ClientModeFile,
		Getters: getter.Getters,
	}
	if err = client.Get(); err != nil {
		return nil, notFound(input, err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		return nil, notFound(input, err)
	}

	return b, nil
}

// localPath reports whether input names a local file and returns its
// absolute path. Inputs detected as file:// URLs count as local.
func (f *Fetcher) localPath(input string) (string, bool) {
	if strings.HasPrefix(input, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			input = filepath.Join(home, input[2:])
		}
	}
	if filepath.IsAbs(input) || strings.HasPrefix(input, ".") {
		return filepath.Clean(input), true
	}
	detected, err := getter.Detect(input, f.pwd, getter.Detectors)
	if err != nil {
		return "", false
	}
	u, err := url.Parse(detected)
	if err != nil || (u.Scheme != "file" && u.Scheme != "") {
		return "", false
	}
	if u.Scheme == "file" {
		return u.Path, true
	}

	return filepath.Join(f.pwd, input), true
}

func notFound(input string, cause error) error {
	err := errors.Wrapf(ErrInputNotFound, "%q: %v", input, cause)

	return errors.WithHint(err, "check that the path exists or the URL is reachable")
}
