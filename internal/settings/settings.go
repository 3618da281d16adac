// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package settings holds the user's browsing selection and its persistence.

The [Store] owns the selected game and language, the search filter text,
the selected type tags, the display mode and the all-languages toggle.
Every change is persisted as a single blob and then announced to the
registered observers, synchronously and in registration order.

Blob format:

	game:mhw|lang:FR|filterMode:SHADE|types:a%3Bb

Pairs are separated by '|'; a pair must contain exactly one ':'. The type
list is joined with ';' and query-escaped. The filter text and the
all-languages toggle are session state and are not persisted.
*/
package settings

import (
	"net/url"
	"strings"

	"github.com/taibuivan/mhinfo/internal/platform/constants"
	"github.com/taibuivan/mhinfo/pkg/query"
)

// # Display Mode

// DisplayMode decides what happens to monsters that do not match the filter.
type DisplayMode int

const (
	// Hidden removes non-matching monsters from the listing.
	Hidden DisplayMode = iota
	// Shaded keeps non-matching monsters listed but dimmed.
	Shaded
)

// String returns the persisted form of the mode.
func (mode DisplayMode) String() string {
	if mode == Shaded {
		return "SHADE"
	}
	return "HIDE"
}

// ParseDisplayMode parses "HIDE" or "SHADE", ignoring case.
func ParseDisplayMode(value string) (DisplayMode, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "HIDE":
		return Hidden, true
	case "SHADE":
		return Shaded, true
	}
	return Hidden, false
}

// # Snapshot

// Settings is a snapshot of the store.
type Settings struct {
	Game         string      `json:"game"`
	Language     string      `json:"language"`
	Filter       string      `json:"filter"`
	Types        []string    `json:"types"`
	DisplayMode  DisplayMode `json:"display_mode"`
	AllLanguages bool        `json:"all_languages"`
}

// # Blob Codec

// Encode renders the persisted part of settings as a blob.
func Encode(settings Settings) string {
	pairs := []string{
		constants.SettingsKeyGame + constants.SettingsKeyValueSeparator + settings.Game,
		constants.SettingsKeyLanguage + constants.SettingsKeyValueSeparator + settings.Language,
		constants.SettingsKeyFilterMode + constants.SettingsKeyValueSeparator + settings.DisplayMode.String(),
		constants.SettingsKeyTypes + constants.SettingsKeyValueSeparator + EncodeTypes(settings.Types),
	}
	return strings.Join(pairs, constants.SettingsPairSeparator)
}

// Decode splits a blob into its raw key/value pairs.
//
// Pairs without exactly one ':' are skipped and later pairs overwrite earlier
// ones. Values are returned as stored; use [DecodeTypes] for the type list.
func Decode(blob string) map[string]string {
	values := make(map[string]string)
	for _, pair := range strings.Split(blob, constants.SettingsPairSeparator) {
		if strings.Count(pair, constants.SettingsKeyValueSeparator) != 1 {
			continue
		}
		key, value, _ := strings.Cut(pair, constants.SettingsKeyValueSeparator)
		values[key] = value
	}
	return values
}

// EncodeTypes joins and escapes a type list.
func EncodeTypes(types []string) string {
	return url.QueryEscape(strings.Join(types, constants.SettingsListSeparator))
}

// DecodeTypes reverses [EncodeTypes]. Empty entries are dropped.
func DecodeTypes(value string) ([]string, error) {
	joined, err := url.QueryUnescape(value)
	if err != nil {
		return nil, err
	}
	types := query.Split(joined, constants.SettingsListSeparator)
	if types == nil {
		types = []string{}
	}
	return types, nil
}
