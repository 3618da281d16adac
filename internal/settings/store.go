// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"net/url"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/taibuivan/mhinfo/internal/platform/apperr"
	"github.com/taibuivan/mhinfo/internal/platform/config"
	"github.com/taibuivan/mhinfo/internal/platform/constants"
	"github.com/taibuivan/mhinfo/internal/platform/event"
	"github.com/taibuivan/mhinfo/internal/search"
	"github.com/taibuivan/mhinfo/pkg/slice"
)

// Store is the observable settings state.
//
// # Concurrency
//
// Store is not safe for concurrent use. Observers run synchronously on the
// goroutine that called the setter and must not set the field they observe.
type Store struct {
	catalog   *config.Catalog
	persister Persister
	logger    zerolog.Logger

	current    Settings
	lastFilter string
	restored   bool

	gameChanged         event.Event[config.Game]
	languageChanged     event.Event[string]
	filterChanged       event.Event[string]
	typesChanged        event.Event[[]string]
	displayModeChanged  event.Event[DisplayMode]
	allLanguagesChanged event.Event[bool]
}

// NewStore returns a store selecting the first game and first language of
// catalog. It fails with INVALID_CATALOG when either list is empty.
// A nil persister keeps settings in memory.
func NewStore(catalog *config.Catalog, persister Persister, logger zerolog.Logger) (*Store, error) {
	if catalog == nil || len(catalog.Games) == 0 {
		return nil, apperr.InvalidCatalog("catalog has no games")
	}
	if len(catalog.Languages) == 0 {
		return nil, apperr.InvalidCatalog("catalog has no languages")
	}
	if persister == nil {
		persister = &MemoryPersister{}
	}

	return &Store{
		catalog:   catalog,
		persister: persister,
		logger:    logger.With().Str("component", "settings").Logger(),
		current: Settings{
			Game:        catalog.Games[0].ID,
			Language:    catalog.Languages[0],
			Types:       []string{},
			DisplayMode: Hidden,
		},
	}, nil
}

// # Accessors

// Catalog returns the catalog the store selects from.
func (store *Store) Catalog() *config.Catalog {
	return store.catalog
}

// Snapshot returns a copy of the current settings.
func (store *Store) Snapshot() Settings {
	snapshot := store.current
	snapshot.Types = slices.Clone(store.current.Types)
	return snapshot
}

// Game returns the selected game.
func (store *Store) Game() config.Game {
	game, _ := store.catalog.FindGame(store.current.Game)
	return game
}

// Language returns the selected language code.
func (store *Store) Language() string { return store.current.Language }

// Filter returns the current filter text.
func (store *Store) Filter() string { return store.current.Filter }

// Types returns the selected type tags.
func (store *Store) Types() []string { return slices.Clone(store.current.Types) }

// DisplayMode returns the display mode.
func (store *Store) DisplayMode() DisplayMode { return store.current.DisplayMode }

// AllLanguages reports whether the filter matches names in every language.
func (store *Store) AllLanguages() bool { return store.current.AllLanguages }

// # Setters

// SetGame selects the game with id. Unknown ids fail with NOT_FOUND.
func (store *Store) SetGame(id string) error {
	game, ok := store.catalog.FindGame(id)
	if !ok {
		return apperr.NotFound("Game")
	}
	if game.ID == store.current.Game {
		return nil
	}

	store.current.Game = game.ID
	store.persist()
	store.gameChanged.Raise(game)
	return nil
}

// SetLanguage selects the language with code. Unknown codes fail with NOT_FOUND.
func (store *Store) SetLanguage(code string) error {
	language, ok := store.catalog.FindLanguage(code)
	if !ok {
		return apperr.NotFound("Language")
	}
	if language == store.current.Language {
		return nil
	}

	store.current.Language = language
	store.persist()
	store.languageChanged.Raise(language)
	return nil
}

// SetFilter replaces the filter text after regional input normalization.
func (store *Store) SetFilter(text string) {
	text = search.NormalizeInput(text)
	if text == store.current.Filter {
		return
	}

	store.current.Filter = text
	store.lastFilter = text
	store.persist()
	store.filterChanged.Raise(text)
}

// SetTypes replaces the selected type tags. Blank and repeated tags are dropped.
func (store *Store) SetTypes(types []string) {
	cleaned := cleanTypes(types)
	if slices.Equal(cleaned, store.current.Types) {
		return
	}

	store.current.Types = cleaned
	store.persist()
	store.typesChanged.Raise(slices.Clone(cleaned))
}

// SetDisplayMode switches between hiding and shading non-matching monsters.
func (store *Store) SetDisplayMode(mode DisplayMode) {
	if mode == store.current.DisplayMode {
		return
	}

	store.current.DisplayMode = mode
	store.persist()
	store.displayModeChanged.Raise(mode)
}

// SetAllLanguages toggles matching names in every language.
func (store *Store) SetAllLanguages(enabled bool) {
	if enabled == store.current.AllLanguages {
		return
	}

	store.current.AllLanguages = enabled
	store.persist()
	store.allLanguagesChanged.Raise(enabled)
}

// ReapplySearchFilter re-raises the filter event with the last filter text,
// so that observers recompute without the text changing.
func (store *Store) ReapplySearchFilter() {
	store.filterChanged.Raise(store.lastFilter)
}

// # Observers

// OnGameChanged registers handler for game changes.
func (store *Store) OnGameChanged(handler event.Handler[config.Game]) *event.Subscription {
	return store.gameChanged.Register(handler)
}

// OnLanguageChanged registers handler for language changes.
func (store *Store) OnLanguageChanged(handler event.Handler[string]) *event.Subscription {
	return store.languageChanged.Register(handler)
}

// OnFilterChanged registers handler for filter changes and reapplications.
func (store *Store) OnFilterChanged(handler event.Handler[string]) *event.Subscription {
	return store.filterChanged.Register(handler)
}

// OnTypesChanged registers handler for type selection changes.
func (store *Store) OnTypesChanged(handler event.Handler[[]string]) *event.Subscription {
	return store.typesChanged.Register(handler)
}

// OnDisplayModeChanged registers handler for display mode changes.
func (store *Store) OnDisplayModeChanged(handler event.Handler[DisplayMode]) *event.Subscription {
	return store.displayModeChanged.Register(handler)
}

// OnAllLanguagesChanged registers handler for all-languages toggles.
func (store *Store) OnAllLanguagesChanged(handler event.Handler[bool]) *event.Subscription {
	return store.allLanguagesChanged.Register(handler)
}

// Unregister removes the registration behind subscription, whichever event
// it belongs to. It reports whether anything was removed.
func (store *Store) Unregister(subscription *event.Subscription) bool {
	if subscription == nil {
		return false
	}
	return store.gameChanged.Unregister(subscription) ||
		store.languageChanged.Unregister(subscription) ||
		store.filterChanged.Unregister(subscription) ||
		store.typesChanged.Unregister(subscription) ||
		store.displayModeChanged.Unregister(subscription) ||
		store.allLanguagesChanged.Unregister(subscription)
}

// # Bootstrap

// Restore applies the persisted blob once. Unknown games, languages and
// modes are ignored. Observers are not notified.
func (store *Store) Restore() error {
	if store.restored {
		return nil
	}
	store.restored = true

	blob, err := store.persister.Load()
	if err != nil {
		store.logger.Warn().Err(err).Msg("settings_restore_failed")
		return err
	}

	values := Decode(blob)
	store.applyGame(values[constants.SettingsKeyGame])
	store.applyLanguage(values[constants.SettingsKeyLanguage])
	store.applyDisplayMode(values[constants.SettingsKeyFilterMode])

	if raw, ok := values[constants.SettingsKeyTypes]; ok {
		types, err := DecodeTypes(raw)
		if err != nil {
			store.logger.Warn().Err(err).Str("types", raw).Msg("settings_types_invalid")
		} else {
			store.current.Types = cleanTypes(types)
		}
	}

	store.logger.Debug().Str("game", store.current.Game).Str("lang", store.current.Language).Msg("settings_restored")
	return nil
}

// ApplyQuery applies a query-string bootstrap such as "lang=fr&game=mhw".
//
// Pairs are read in order and the last one wins per key; keys are
// case-insensitive. Pairs that fail to unescape, unknown keys and
// unavailable values are skipped. Observers are not notified; the result
// is persisted when anything changed.
func (store *Store) ApplyQuery(raw string) {
	values := make(map[string]string)
	for _, pair := range strings.Split(strings.TrimPrefix(raw, "?"), "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			store.logger.Debug().Err(err).Str("pair", pair).Msg("query_pair_skipped")
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			store.logger.Debug().Err(err).Str("pair", pair).Msg("query_pair_skipped")
			continue
		}
		values[strings.ToLower(key)] = value
	}

	before := Encode(store.current)

	if value, ok := values[constants.QueryKeyGame]; ok {
		store.applyGame(value)
	}
	if value, ok := values[constants.QueryKeyLanguage]; ok {
		store.applyLanguage(value)
	}
	if value, ok := values[constants.QueryKeyFilterMode]; ok {
		store.applyDisplayMode(value)
	}
	if value, ok := values[constants.QueryKeyFilter]; ok {
		store.current.Filter = search.NormalizeInput(value)
		store.lastFilter = store.current.Filter
	}

	if Encode(store.current) != before {
		store.persist()
	}
}

func (store *Store) applyGame(id string) {
	if game, ok := store.catalog.FindGame(id); ok {
		store.current.Game = game.ID
	}
}

func (store *Store) applyLanguage(code string) {
	if language, ok := store.catalog.FindLanguage(code); ok {
		store.current.Language = language
	}
}

func (store *Store) applyDisplayMode(value string) {
	if mode, ok := ParseDisplayMode(value); ok {
		store.current.DisplayMode = mode
	}
}

// persist saves the snapshot. Failures are logged and otherwise ignored.
func (store *Store) persist() {
	if err := store.persister.Save(Encode(store.current)); err != nil {
		store.logger.Warn().Err(err).Msg("settings_persist_failed")
	}
}

func cleanTypes(types []string) []string {
	trimmed := slice.Map(types, strings.TrimSpace)
	kept := slice.Distinct(slice.Filter(trimmed, func(tag string) bool { return tag != "" }))
	if kept == nil {
		return []string{}
	}
	return kept
}
