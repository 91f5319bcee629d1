// SPDX-License-Identifier: MIT

// Package entity resolves the canonical set of characters tracked by the
// co-occurrence pipeline.
//
// A Character owns a non-empty, ordered alias list and a display name
// derived from its first alias. Two strategies produce Characters:
//
//   - ResolveRoster uses caller-supplied alias rows verbatim (after
//     normalization).
//   - ResolveAutomatic extracts title-cased proper nouns from the text,
//     collapses plurals (a candidate ending in "s" is dropped when its
//     singular is also a candidate) and removes English stopwords.
//
// The plural rule is a heuristic: a genuine name ending in "s" is discarded
// whenever its truncation is also a candidate ("Jame"/"James").
//
// Aliases and unit texts share one normalization (Normalize), so a
// substring count on normalized text is a whole-word match.
package entity
