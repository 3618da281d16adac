// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fold

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// nonFileSafe matches any sequence of characters not allowed in a file name part.
	nonFileSafe = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Slug converts an identifier such as a game id into an ASCII file name part.
//
// The input goes through [Wide], then every non-alphanumeric character
// becomes a hyphen and runs of hyphens collapse: "MH World" → "mh-world".
func Slug(s string) string {
	result := Wide(s)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonFileSafe.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
