// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package stats aggregates the currently visible monsters.

The summary is recomputed after every visibility change:

  - TotalAttacks: every attack attribute present, once, in catalog order.
  - AverageWeaks: per weakness attribute, the summed normalized values
    divided by the number of visible monsters, renormalized to 100.
  - DistinctNames: visible species, variants such as "Name (Tempered)"
    counted once.
*/
package stats

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/taibuivan/mhinfo/internal/attribute"
	"github.com/taibuivan/mhinfo/internal/platform/constants"
	"github.com/taibuivan/mhinfo/internal/search"
	"github.com/taibuivan/mhinfo/pkg/fold"
	"github.com/taibuivan/mhinfo/pkg/slice"
)

// variantSuffix matches a trailing parenthetical such as " (tempered)".
var variantSuffix = regexp.MustCompile(`\s*\([^()]*\)\s*$`)

// Summary is the aggregate of the visible monsters.
type Summary struct {
	Visible       int                   `json:"visible"`
	DistinctNames int                   `json:"distinct_names"`
	TotalAttacks  []attribute.Attribute `json:"total_attacks"`
	AverageWeaks  []attribute.Magnitude `json:"average_weaks"`
}

// Translator resolves localization keys.
type Translator interface {
	Translate(key string) (string, error)
}

// Compute aggregates the visible views, naming them in language and folding
// names with folder ([fold.Key] when nil).
func Compute(views []*search.View, language string, folder fold.Func) Summary {
	if folder == nil {
		folder = fold.Key
	}

	shown := slice.Filter(views, func(view *search.View) bool { return view.Visible })

	summary := Summary{
		Visible:      len(shown),
		TotalAttacks: []attribute.Attribute{},
		AverageWeaks: []attribute.Magnitude{},
	}
	if len(shown) == 0 {
		return summary
	}

	attacks := make(map[attribute.Attribute]bool)
	sums := make(map[attribute.Attribute]float64)
	species := make(map[string]bool)

	for _, view := range shown {
		for _, attack := range view.Record.Attacks {
			attacks[attack.Attribute] = true
		}
		for _, weak := range view.Record.Weaknesses {
			if weak.Value >= 0 {
				sums[weak.Attribute] += float64(weak.Value)
			}
		}
		species[BaseName(view.Key(language, folder))] = true
	}

	for a := range attacks {
		summary.TotalAttacks = append(summary.TotalAttacks, a)
	}
	sort.Slice(summary.TotalAttacks, func(i, j int) bool {
		return summary.TotalAttacks[i] < summary.TotalAttacks[j]
	})

	averages := make(map[attribute.Attribute]float64, len(sums))
	for a, sum := range sums {
		averages[a] = sum / float64(len(shown))
	}
	summary.AverageWeaks = attribute.NormalizeAverages(averages)
	summary.DistinctNames = len(species)

	return summary
}

// BaseName strips a trailing parenthetical variant suffix.
func BaseName(name string) string {
	return strings.TrimSpace(variantSuffix.ReplaceAllString(name, ""))
}

// CountString renders the distinct monster count with the localization keys
// NO_MONSTER, ONE_MONSTER and N_MONSTERS (appended to the number).
func CountString(summary Summary, translator Translator) (string, error) {
	switch summary.DistinctNames {
	case 0:
		return translator.Translate(constants.KeyNoMonster)
	case 1:
		return translator.Translate(constants.KeyOneMonster)
	default:
		suffix, err := translator.Translate(constants.KeyNMonsters)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(summary.DistinctNames) + suffix, nil
	}
}
