// SPDX-License-Identifier: MIT

// Package nlp is the language service behind segmentation and automatic
// entity resolution.
//
// An Analyzer is constructed once by the caller (New loads the Punkt
// sentence model) and passed by reference into segment and entity. No
// package-level model is ever loaded implicitly.
//
// Capabilities:
//
//	Sentences    English sentence boundaries (Punkt, via neurosnap/sentences).
//	Words        word tokens with punctuation-only tokens removed (prose tokenizer).
//	ProperNouns  the subset of words tagged NNP/NNPS (prose averaged perceptron).
//
// An Analyzer is safe for concurrent use; every call builds fresh documents.
package nlp
