package query

import (
	"strings"
)

// StringSlice parses a single comma-separated string into a trimmed slice
// of strings. Empty entries are dropped.
func StringSlice(val string) []string {
	return Split(val, ",")
}

// Split parses a sep-separated string into a trimmed slice of strings.
// Empty entries are dropped; an empty input yields nil.
func Split(val, sep string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, sep) {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
