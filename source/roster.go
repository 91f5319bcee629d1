// SPDX-License-Identifier: MIT

package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bookworm/entity"
)

// RosterFormat is the serialization of a roster file.
type RosterFormat int

const (
	// CSV holds one character per line, one alias per field.
	CSV RosterFormat = iota
	// YAML holds a sequence of alias sequences.
	YAML
)

// FormatOf picks YAML for .yaml/.yml paths and CSV otherwise.
func FormatOf(path string) RosterFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}

	return CSV
}

// ParseRoster decodes alias rows from r.
//
// Errors: ErrMalformedRoster naming the offending line (CSV) or document (YAML).
func ParseRoster(r io.Reader, format RosterFormat) ([][]string, error) {
	switch format {
	case YAML:
		var rows [][]string
		if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, malformed(errors.Wrap(err, "yaml"))
		}
		return rows, nil
	default:
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		var rows [][]string
		for {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return rows, nil
			}
			if err != nil {
				return nil, malformed(err)
			}
			rows = append(rows, rec)
		}
	}
}

// LoadRoster fetches, parses and resolves a roster file in one step.
func (f *Fetcher) LoadRoster(ctx context.Context, path string) ([]entity.Character, error) {
	b, err := f.FetchBytes(ctx, path)
	if err != nil {
		return nil, err
	}
	rows, err := ParseRoster(bytes.NewReader(b), FormatOf(path))
	if err != nil {
		return nil, errors.Wrapf(err, "roster %q", path)
	}
	chars, err := entity.ResolveRoster(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "roster %q", path)
	}
	f.log.Debugw("roster loaded", "input", path, "characters", len(chars))

	return chars, nil
}

func malformed(cause error) error {
	return errors.WithHint(
		errors.Wrapf(ErrMalformedRoster, "%v", cause),
		"a roster lists one character per row with one or more aliases")
}
