// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package monster defines the monster records of a game dataset and loads them.

Core Responsibility:

  - Records: Names per language, attacks, normalized weaknesses and type tag.
  - Loading: Fetching "data/<game>.json" from an asset source and parsing it.

A loaded record list is immutable. Per-monster UI state (visibility, cached
search keys) lives in the search package, never here.
*/
package monster

import (
	"fmt"
	"sort"

	"github.com/taibuivan/mhinfo/internal/attribute"
)

// # Core Entities

// LocalizedName is a monster name in one language.
type LocalizedName struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Record is one monster of a dataset.
type Record struct {
	Icon  int             `json:"icon"`
	Names []LocalizedName `json:"names"` // File order; duplicates kept

	// Attacks are sorted by ascending value and are not normalized.
	Attacks []attribute.Magnitude `json:"attacks"`

	// Weaknesses are normalized: descending, the strongest at 100.
	Weaknesses []attribute.Magnitude `json:"weaknesses"`

	// Type is a free-form category tag used by the type filter.
	Type string `json:"type,omitempty"`
}

// # Name Resolution

// NameIn returns the first non-empty name recorded for language.
func (record *Record) NameIn(language string) (string, bool) {
	for _, name := range record.Names {
		if name.Language == language {
			return name.Value, name.Value != ""
		}
	}
	return "", false
}

// Name returns the display name for language, falling back to a bracketed
// placeholder built from the first recorded name so that missing
// translations stay visible: "<<[EN] Rathalos>>".
func (record *Record) Name(language string) string {
	if value, ok := record.NameIn(language); ok {
		return value
	}
	if len(record.Names) == 0 {
		return ""
	}
	first := record.Names[0]
	return fmt.Sprintf("<<[%s] %s>>", first.Language, first.Value)
}

// Types returns the sorted distinct non-empty type tags of records.
func Types(records []Record) []string {
	seen := make(map[string]bool)
	var types []string
	for _, record := range records {
		if record.Type != "" && !seen[record.Type] {
			seen[record.Type] = true
			types = append(types, record.Type)
		}
	}
	sort.Strings(types)
	return types
}
