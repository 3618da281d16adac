// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package attribute defines the damage elements and status effects a monster
can inflict or be weak to.

Core Responsibility:

  - Catalog: The closed [Attribute] enumeration and its mapping to dataset
    tokens and translation keys.
  - Normalization: Rescaling raw weakness points into relative percentages.

The catalog is process-wide and immutable; nothing here allocates state.
*/
package attribute

import (
	"strconv"
	"strings"
)

// # Domain Enums

// Attribute is a damage element or status-effect kind.
type Attribute int

const (
	Unknown Attribute = iota
	Fire
	Water
	Thunder
	Ice
	Dragon
	Poison
	NoxiousPoison
	DeadlyPoison
	Sleep
	Paralysis
	Blast
	Virus
	Bleeding
	Fatigue
	Muddy
	Snowman
	Soiled
	Stun
	DefenseDown
	Confusion
	Effluvial
)

// info is one row of the catalog.
type info struct {
	token   string // dataset token, lowercase
	key     string // translation key
	display string // English display name
}

// catalog is indexed by Attribute; Unknown has no dataset token.
var catalog = [...]info{
	Unknown:       {"", "UNKNOWN", "?"},
	Fire:          {"fire", "FIRE", "Fire"},
	Water:         {"water", "WATER", "Water"},
	Thunder:       {"thunder", "THUNDER", "Thunder"},
	Ice:           {"ice", "ICE", "Ice"},
	Dragon:        {"dragon", "DRAGON", "Dragon"},
	Poison:        {"poison", "POISON", "Poison"},
	NoxiousPoison: {"npoison", "NOXIOUS_POISON", "Noxious Poison"},
	DeadlyPoison:  {"dpoison", "DEADLY_POISON", "Deadly Poison"},
	Sleep:         {"sleep", "SLEEP", "Sleep"},
	Paralysis:     {"paralysis", "PARALYSIS", "Paralysis"},
	Blast:         {"blast", "BLAST", "Blast"},
	Virus:         {"virus", "VIRUS", "Virus"},
	Bleeding:      {"bleeding", "BLEEDING", "Bleeding"},
	Fatigue:       {"fatigue", "FATIGUE", "Fatigue"},
	Muddy:         {"muddy", "MUDDY", "Muddy"},
	Snowman:       {"snowman", "SNOWMAN", "Snowman"},
	Soiled:        {"soiled", "SOILED", "Soiled"},
	Stun:          {"stun", "STUN", "Stun"},
	DefenseDown:   {"defdown", "DEFENSE_DOWN", "Defense Down"},
	Confusion:     {"confusion", "CONFUSION", "Confusion"},
	Effluvial:     {"effluvial", "EFFLUVIAL", "Effluvial"},
}

// byToken is the reverse lookup of dataset tokens.
var byToken = func() map[string]Attribute {
	m := make(map[string]Attribute, len(catalog))
	for i, row := range catalog {
		if row.token != "" {
			m[row.token] = Attribute(i)
		}
	}
	return m
}()

// # Catalog Lookups

// FromDataToken resolves a dataset token (case-insensitive).
// Unrecognized tokens map to [Unknown]: datasets may reference attributes
// newer than this catalog.
func FromDataToken(token string) Attribute {
	if a, ok := byToken[strings.ToLower(strings.TrimSpace(token))]; ok {
		return a
	}
	return Unknown
}

// TranslationKey returns the localization key of a.
func TranslationKey(a Attribute) string {
	if !a.IsValid() {
		return catalog[Unknown].key
	}
	return catalog[a].key
}

// Token returns the dataset token of a, or "" for [Unknown].
func (a Attribute) Token() string {
	if !a.IsValid() {
		return ""
	}
	return catalog[a].token
}

// String returns the English display name.
func (a Attribute) String() string {
	if !a.IsValid() {
		return catalog[Unknown].display
	}
	return catalog[a].display
}

// IsValid reports whether a is part of the catalog (Unknown included).
func (a Attribute) IsValid() bool {
	return a >= Unknown && int(a) < len(catalog)
}

// All returns every known attribute in enumeration order, Unknown excluded.
func All() []Attribute {
	out := make([]Attribute, 0, len(catalog)-1)
	for i := 1; i < len(catalog); i++ {
		out = append(out, Attribute(i))
	}
	return out
}

// # Magnitudes

// Magnitude pairs an attribute with a signed value.
// A negative value means "not applicable / unknown".
type Magnitude struct {
	Attribute Attribute `json:"attribute"`
	Value     int       `json:"value"`
}

// DisplayValue renders a normalized value the way the monster card shows it.
func DisplayValue(m Magnitude) string {
	switch {
	case m.Value < 0:
		return ""
	case m.Value == 100:
		return "MAX"
	default:
		return strconv.Itoa(m.Value) + "%"
	}
}

// MarshalText encodes a as its dataset token ("unknown" for [Unknown]).
func (a Attribute) MarshalText() ([]byte, error) {
	if token := a.Token(); token != "" {
		return []byte(token), nil
	}
	return []byte("unknown"), nil
}

// UnmarshalText decodes a dataset token; unrecognized tokens yield [Unknown].
func (a *Attribute) UnmarshalText(text []byte) error {
	*a = FromDataToken(string(text))
	return nil
}
