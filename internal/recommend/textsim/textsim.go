// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

// Package textsim provides the text primitives used by the recommendation
// engine: Unicode normalization, word tokenization, and a symmetric bigram
// string similarity.
//
// # Similarity
//
// Dice computes the Sørensen–Dice coefficient over character bigrams after
// removing all whitespace:
//
//	dice(a, b) = 2·|bigrams(a) ∩ bigrams(b)| / (|bigrams(a)| + |bigrams(b)|)
//
// The coefficient is symmetric by construction and bounded to [0, 1].
// Identical inputs always score 1.0, including inputs shorter than a bigram.
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package textsim

import (
	"slices"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// bigramSize is the n-gram width used by Dice.
const bigramSize = 2

// dice is read-only after initialization; Compare keeps no state.
var dice = &metrics.SorensenDice{
	CaseSensitive: true, // inputs are normalized by the caller
	NgramSize:     bigramSize,
}

// Normalize returns the comparable form of s: NFKC-normalized, lowercased,
// with leading and trailing whitespace removed.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// Casers carry state and must not be shared between goroutines.
	lower := cases.Lower(language.Und)
	return strings.TrimSpace(lower.String(norm.NFKC.String(s)))
}

// Tokenize splits the normalized form of s into word tokens on runs of
// characters that are neither letters nor digits. Empty tokens are dropped.
func Tokenize(s string) []string {
	return strings.FieldsFunc(Normalize(s), isSeparator)
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// TokenSet returns the union of the tokens of every part, deduplicated and
// sorted lexicographically so that joined renderings are reproducible.
func TokenSet(parts ...string) []string {
	var tokens []string
	for _, p := range parts {
		tokens = append(tokens, Tokenize(p)...)
	}
	if len(tokens) == 0 {
		return []string{}
	}
	slices.Sort(tokens)
	return slices.Compact(tokens)
}

// Dice returns the bigram similarity of a and b in [0, 1].
func Dice(a, b string) float64 {
	a, b = stripSpace(a), stripSpace(b)
	if a == b {
		return 1
	}
	return clamp01(strutil.Similarity(a, b, dice))
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func clamp01(v float64) float64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
