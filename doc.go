// SPDX-License-Identifier: MIT

// Package bookworm turns the raw text of a novel into a weighted network of
// its characters.
//
// Two characters are linked when they appear in the same unit of text (a
// sentence, a fixed window of words or characters, or a sliding window of
// sentences), and the link weight counts how often that happens.
//
// The work is split across subpackages:
//
//	nlp/       - sentence and word tokenization, proper-noun tagging
//	segment/   - text to ordered units
//	entity/    - character rosters: loaded from rows or resolved automatically
//	cooccur/   - unit x character presence counts and co-occurrence scores
//	graph/     - thresholded edge list plus Laplacian
//	matrix/    - dense matrices, Gram product, Jacobi eigen solver
//	chrono/    - sequential and cumulative sectioning, concurrent builds
//	spectral/  - Laplacian spectra and pairwise graph dissimilarity
//	pipeline/  - the full text → graph run
//	source/    - text and roster acquisition from paths or URLs
//	export/    - D3 JSON, CSV interaction tables, terminal tables
//
// The bookworm command in cmd/bookworm wires these together:
//
//	go install github.com/katalvlaran/bookworm/cmd/bookworm@latest
//	bookworm build --path novel.txt --roster characters.csv --format json
//
// A three-sentence example:
//
//	Alice met Bob. Bob met Carol. Alice and Bob talked again.
//
//	    Alice ══2══ Bob ──1── Carol
//
// With the default threshold of 2 (edges need a score strictly greater than
// the threshold) neither edge survives; with threshold 0 both do.
package bookworm
