// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attribute

import (
	"math"
	"slices"
	"sort"
)

// # Normalization

// Normalize rescales raw weakness points into 0-100 relative percentages.
//
// The result is a new slice sorted by descending original value (stable for
// ties). When the largest value is non-negative it becomes exactly 100 and
// every other non-negative value v becomes round(v*100/head). Negative values
// are left untouched. A zero head yields 100 for the head and 0 for the other
// non-negative entries.
func Normalize(in []Magnitude) []Magnitude {
	if len(in) == 0 {
		return []Magnitude{}
	}

	out := slices.Clone(in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })

	head := out[0].Value
	if head < 0 {
		return out
	}

	for i := 1; i < len(out); i++ {
		if out[i].Value >= 0 {
			out[i].Value = rescale(float64(out[i].Value), float64(head))
		}
	}
	out[0].Value = 100

	return out
}

// NormalizeAverages applies the [Normalize] rule to fractional values, so
// that averages are rescaled before being rounded. Entries are returned in
// descending order; ties keep enumeration order.
func NormalizeAverages(averages map[Attribute]float64) []Magnitude {
	if len(averages) == 0 {
		return []Magnitude{}
	}

	type entry struct {
		attribute Attribute
		value     float64
	}

	entries := make([]entry, 0, len(averages))
	for a, v := range averages {
		entries = append(entries, entry{a, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].attribute < entries[j].attribute
	})

	head := entries[0].value
	out := make([]Magnitude, len(entries))
	for i, e := range entries {
		switch {
		case e.value < 0 || head < 0:
			out[i] = Magnitude{e.attribute, int(math.Round(e.value))}
		case i == 0:
			out[i] = Magnitude{e.attribute, 100}
		default:
			out[i] = Magnitude{e.attribute, rescale(e.value, head)}
		}
	}
	return out
}

// rescale computes round(v*100/head), guarding the zero head.
func rescale(v, head float64) int {
	if head == 0 {
		return 0
	}
	return int(math.Round(v * 100 / head))
}
