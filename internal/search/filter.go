// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"strings"

	"github.com/taibuivan/mhinfo/pkg/query"
)

// # Filter Grammar

// regional maps characters produced by Japanese input methods to their
// ASCII counterparts so that they compose with the token grammar.
var regional = strings.NewReplacer("、", ",", "＝", "=")

// NormalizeInput rewrites full-width commas and equals signs.
func NormalizeInput(text string) string {
	return regional.Replace(text)
}

// Token is one comma-separated term of a filter.
type Token struct {
	// Text is lowercase and trimmed, without the "=" prefix.
	Text string
	// Exact tokens must equal the whole name; others match substrings.
	Exact bool
}

// Filter is a compiled filter expression.
type Filter struct {
	Tokens []Token
}

// Compile parses a filter expression.
//
// # Grammar
//
//	filter = token { "," token }
//	token  = [ "=" ] text
//
// Tokens are trimmed and lowercased; empty tokens are dropped.
func Compile(text string) Filter {
	terms := query.StringSlice(strings.ToLower(NormalizeInput(text)))

	filter := Filter{Tokens: make([]Token, 0, len(terms))}
	for _, term := range terms {
		if strings.HasPrefix(term, "=") {
			filter.Tokens = append(filter.Tokens, Token{Text: strings.TrimSpace(term[1:]), Exact: true})
			continue
		}
		filter.Tokens = append(filter.Tokens, Token{Text: term})
	}
	return filter
}

// Empty reports whether the filter has no token.
func (filter Filter) Empty() bool {
	return len(filter.Tokens) == 0
}

// Matches reports whether any token matches the raw lowercase name or its
// folded form.
func (filter Filter) Matches(raw, folded string) bool {
	for _, token := range filter.Tokens {
		if token.Exact {
			if folded == token.Text || raw == token.Text {
				return true
			}
			continue
		}
		if strings.Contains(folded, token.Text) || strings.Contains(raw, token.Text) {
			return true
		}
	}
	return false
}
