// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold strips diacritics from monster names for loose comparison.
//
// # Usage
//
// Search compares a user filter against both the raw lowercase name and its
// folded form, so "deviljho" finds "Déviljho". [Key] is the comparison form.
//
// Two strategies are available:
//
//   - [Key] uses a fixed table of Latin accents. Characters outside the
//     table pass through unchanged.
//   - [Wide] first removes Unicode nonspacing marks (kana voicing marks
//     excepted), then applies [Key].
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// table maps accented runes to their ASCII replacement.
var table = map[rune]string{
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a",
	'ç': "c",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i",
	'ñ': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o", 'ø': "o",
	'ß': "s",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u",
	'ÿ': "y",
	'Œ': "oe",
}

// Func is a folding strategy. It returns the lowercase comparison form of
// its input.
type Func func(string) string

// Fold replaces every rune found in the accent table and keeps the others.
// It does not change case.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := table[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Key returns the lowercase folded comparison form of s.
//
// Folding runs before and after lowercasing: uppercase-only entries such as
// 'Œ' are caught before case folding, lowercase entries after it.
func Key(s string) string {
	return Fold(strings.ToLower(Fold(s)))
}

// Wide removes all combining marks before applying [Key].
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes nonspacing marks (accents), keeping the kana voicing marks so
//    that ジ does not become シ.
// 3. Recomposes to NFC.
// 4. Applies [Key] for runes that do not decompose (ø, ß, Œ).
func Wide(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isMn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return Key(s)
	}
	return Key(result)
}

// Combining kana voiced and semi-voiced sound marks.
const (
	kanaVoiced     = '\u3099'
	kanaSemiVoiced = '\u309A'
)

// isMn reports whether r is a Unicode non-spacing mark to strip (e.g., accents).
func isMn(r rune) bool {
	if r == kanaVoiced || r == kanaSemiVoiced {
		return false
	}
	return unicode.Is(unicode.Mn, r)
}
