// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package localization provides the flat key/value translation table of the
user interface.

The table is a single JSON document keyed by language code then by key:

	{ "EN": { "NO_MONSTER": "no monster", ... }, "FR": { ... } }

Lookups distinguish "still loading" (NOT_READY error) from "key not found"
(a visibly bracketed "<<KEY>>" placeholder).
*/
package localization

import (
	"context"
	"fmt"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/taibuivan/mhinfo/internal/platform/apperr"
	"github.com/taibuivan/mhinfo/internal/platform/assets"
	"github.com/taibuivan/mhinfo/internal/platform/constants"
)

// memoKey identifies one memoized lookup.
type memoKey struct {
	language string
	key      string
}

// Store holds the translation table and the active language.
//
// # Concurrency
//
// Store is not safe for concurrent use; it lives on the UI event loop.
type Store struct {
	tables   map[string]map[string]string
	language string
	memo     map[memoKey]string
	logger   zerolog.Logger
}

// NewStore returns an unready store using language.
func NewStore(language string, logger zerolog.Logger) *Store {
	return &Store{
		language: language,
		memo:     make(map[memoKey]string),
		logger:   logger.With().Str("component", "localization").Logger(),
	}
}

// # Loading

// Load fetches and decodes the localization file from source.
// On failure the store keeps its previous state and the error is logged.
func (store *Store) Load(context context.Context, source assets.Source) error {
	data, err := source.Fetch(context, constants.LocalizationFile)
	if err != nil {
		store.logger.Error().Err(err).Msg("localization_fetch_failed")
		return fmt.Errorf("localization: %w", err)
	}

	if err := store.LoadBytes(data); err != nil {
		store.logger.Error().Err(err).Msg("localization_invalid")
		return err
	}

	store.logger.Debug().Int("languages", len(store.tables)).Msg("localization_loaded")
	return nil
}

// LoadBytes decodes a localization document and makes the store ready.
func (store *Store) LoadBytes(data []byte) error {
	var tables map[string]map[string]string
	if err := sonic.Unmarshal(data, &tables); err != nil {
		return apperr.InvalidFormat("localization: invalid document", err)
	}
	if tables == nil {
		return apperr.InvalidFormat("localization: root must be an object", nil)
	}

	store.tables = tables
	store.memo = make(map[memoKey]string)
	return nil
}

// Ready reports whether a table has been loaded.
func (store *Store) Ready() bool {
	return store.tables != nil
}

// Languages returns the language codes present in the table, sorted.
func (store *Store) Languages() []string {
	languages := make([]string, 0, len(store.tables))
	for language := range store.tables {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages
}

// # Active Language

// Language returns the active language code.
func (store *Store) Language() string {
	return store.language
}

// SetLanguage switches the active language and drops every memoized lookup.
func (store *Store) SetLanguage(language string) {
	if store.language == language {
		return
	}
	store.language = language
	store.memo = make(map[memoKey]string)
}

// # Lookups

// Translate returns the text of key in the active language.
//
// It fails with NOT_READY before a table is loaded. A missing language, key
// or empty text yields the placeholder "<<KEY>>".
func (store *Store) Translate(key string) (string, error) {
	if !store.Ready() {
		return "", apperr.NotReady("localization")
	}

	id := memoKey{language: store.language, key: key}
	if text, ok := store.memo[id]; ok {
		return text, nil
	}

	text := Placeholder(key)
	if table, ok := store.tables[store.language]; ok {
		if value := table[key]; value != "" {
			text = value
		}
	}

	store.memo[id] = text
	return text, nil
}

// Placeholder is the text shown for an untranslated key.
func Placeholder(key string) string {
	return "<<" + key + ">>"
}
