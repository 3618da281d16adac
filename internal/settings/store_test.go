// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mhinfo/internal/platform/apperr"
	"github.com/taibuivan/mhinfo/internal/platform/config"
	"github.com/taibuivan/mhinfo/internal/platform/logger"
	"github.com/taibuivan/mhinfo/internal/settings"
)

func catalog(t *testing.T) *config.Catalog {
	t.Helper()
	c, err := config.DefaultCatalog()
	require.NoError(t, err)
	return c
}

func newStore(t *testing.T, persister settings.Persister) *settings.Store {
	t.Helper()
	store, err := settings.NewStore(catalog(t), persister, logger.Nop())
	require.NoError(t, err)
	return store
}

/*
TestNewStore verifies the deterministic initial selection and the
empty-catalog guard.
*/
func TestNewStore(t *testing.T) {
	store := newStore(t, nil)
	assert.Equal(t, "mh3u", store.Game().ID)
	assert.Equal(t, "EN", store.Language())
	assert.Equal(t, settings.Hidden, store.DisplayMode())
	assert.Empty(t, store.Types())
	assert.False(t, store.AllLanguages())

	_, err := settings.NewStore(&config.Catalog{Languages: []string{"EN"}}, nil, logger.Nop())
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidCatalog))

	_, err = settings.NewStore(&config.Catalog{Games: []config.Game{{ID: "mhw", Title: "MH World"}}}, nil, logger.Nop())
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidCatalog))
}

func TestSetGame(t *testing.T) {
	persister := &settings.MemoryPersister{}
	store := newStore(t, persister)

	var seen []string
	store.OnGameChanged(func(game config.Game) { seen = append(seen, game.ID) })

	require.NoError(t, store.SetGame("MHW"))
	require.NoError(t, store.SetGame("mhw"))
	assert.Equal(t, []string{"mhw"}, seen)
	assert.Equal(t, 1, persister.Saves)
	assert.Contains(t, persister.Blob, "game:mhw")

	err := store.SetGame("mhgu")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.Equal(t, "mhw", store.Game().ID)
}

func TestSetLanguage(t *testing.T) {
	store := newStore(t, nil)

	var seen []string
	store.OnLanguageChanged(func(language string) { seen = append(seen, language) })

	require.NoError(t, store.SetLanguage("fr"))
	assert.Equal(t, "FR", store.Language())
	assert.Equal(t, []string{"FR"}, seen)

	err := store.SetLanguage("DE")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestSetFilter verifies normalization, short-circuit and reapplication.
*/
func TestSetFilter(t *testing.T) {
	store := newStore(t, nil)

	var seen []string
	store.OnFilterChanged(func(text string) { seen = append(seen, text) })

	store.SetFilter("リオ、＝ジョー")
	store.SetFilter("リオ,=ジョー")
	assert.Equal(t, "リオ,=ジョー", store.Filter())
	assert.Equal(t, []string{"リオ,=ジョー"}, seen)

	store.ReapplySearchFilter()
	assert.Equal(t, []string{"リオ,=ジョー", "リオ,=ジョー"}, seen)

	store.SetFilter("")
	store.ReapplySearchFilter()
	assert.Equal(t, []string{"リオ,=ジョー", "リオ,=ジョー", "", ""}, seen)
}

func TestSetTypes(t *testing.T) {
	store := newStore(t, nil)

	calls := 0
	store.OnTypesChanged(func(types []string) { calls++ })

	store.SetTypes([]string{" a ", "b", "", "a"})
	store.SetTypes([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, store.Types())
	assert.Equal(t, 1, calls)

	store.SetTypes(nil)
	assert.Empty(t, store.Types())
	assert.Equal(t, 2, calls)
}

func TestToggles(t *testing.T) {
	store := newStore(t, nil)

	var modes []settings.DisplayMode
	var all []bool
	store.OnDisplayModeChanged(func(mode settings.DisplayMode) { modes = append(modes, mode) })
	store.OnAllLanguagesChanged(func(enabled bool) { all = append(all, enabled) })

	store.SetDisplayMode(settings.Hidden)
	store.SetDisplayMode(settings.Shaded)
	store.SetAllLanguages(false)
	store.SetAllLanguages(true)

	assert.Equal(t, []settings.DisplayMode{settings.Shaded}, modes)
	assert.Equal(t, []bool{true}, all)
}

/*
TestObservers verifies FIFO dispatch and per-registration removal.
*/
func TestObservers(t *testing.T) {
	store := newStore(t, nil)

	var order []string
	first := store.OnLanguageChanged(func(string) { order = append(order, "first") })
	store.OnLanguageChanged(func(string) { order = append(order, "second") })

	require.NoError(t, store.SetLanguage("JP"))
	assert.Equal(t, []string{"first", "second"}, order)

	assert.True(t, store.Unregister(first))
	assert.False(t, first.Active())
	assert.False(t, store.Unregister(first))
	assert.False(t, store.Unregister(nil))

	order = nil
	require.NoError(t, store.SetLanguage("FR"))
	assert.Equal(t, []string{"second"}, order)
}

/*
TestRestore_RoundTrip saves a full selection and restores it into a fresh store.
*/
func TestRestore_RoundTrip(t *testing.T) {
	persister := &settings.MemoryPersister{}
	store := newStore(t, persister)

	require.NoError(t, store.SetGame("mhw"))
	require.NoError(t, store.SetLanguage("FR"))
	store.SetDisplayMode(settings.Shaded)
	store.SetTypes([]string{"a", "b"})

	restored := newStore(t, persister)
	notified := false
	restored.OnGameChanged(func(config.Game) { notified = true })

	require.NoError(t, restored.Restore())
	assert.Equal(t, "mhw", restored.Game().ID)
	assert.Equal(t, "FR", restored.Language())
	assert.Equal(t, settings.Shaded, restored.DisplayMode())
	assert.Equal(t, []string{"a", "b"}, restored.Types())
	assert.False(t, notified)
}

func TestRestore_UnknownValues(t *testing.T) {
	persister := &settings.MemoryPersister{Blob: "game:mhgu|lang:DE|filterMode:BLUR|bogus:1"}
	store := newStore(t, persister)

	require.NoError(t, store.Restore())
	assert.Equal(t, "mh3u", store.Game().ID)
	assert.Equal(t, "EN", store.Language())
	assert.Equal(t, settings.Hidden, store.DisplayMode())
	assert.Equal(t, 0, persister.Saves)
}

func TestRestore_Once(t *testing.T) {
	persister := &settings.MemoryPersister{Blob: "game:mhw"}
	store := newStore(t, persister)

	require.NoError(t, store.Restore())
	require.NoError(t, store.SetGame("mh4u"))

	persister.Blob = "game:mhxx"
	require.NoError(t, store.Restore())
	assert.Equal(t, "mh4u", store.Game().ID)
}

/*
TestApplyQuery covers case-insensitive keys, ignored values and the reapply
seed.
*/
func TestApplyQuery(t *testing.T) {
	persister := &settings.MemoryPersister{}
	store := newStore(t, persister)

	var seen []string
	store.OnFilterChanged(func(text string) { seen = append(seen, text) })

	store.ApplyQuery("?LANG=jp&Game=mhxx&filter=リオ、ジョー&FMode=shade&zoom=2")
	assert.Equal(t, "JP", store.Language())
	assert.Equal(t, "mhxx", store.Game().ID)
	assert.Equal(t, "リオ,ジョー", store.Filter())
	assert.Equal(t, settings.Shaded, store.DisplayMode())
	assert.Empty(t, seen)
	assert.Equal(t, 1, persister.Saves)

	store.ReapplySearchFilter()
	assert.Equal(t, []string{"リオ,ジョー"}, seen)

	store.ApplyQuery("game=mhgu&lang=DE")
	assert.Equal(t, "mhxx", store.Game().ID)
	assert.Equal(t, "JP", store.Language())
	assert.Equal(t, 1, persister.Saves)
}

/*
TestApplyQuery_Pairs verifies that each pair stands alone: a malformed pair
is skipped without losing the others, and the last pair wins per key.
*/
func TestApplyQuery_Pairs(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		language string
		game     string
		filter   string
	}{
		{"bad_escape_in_value", "lang=FR&filter=100%", "FR", "mh3u", ""},
		{"bad_escape_in_key", "lang=FR&%zz=1&game=mhw", "FR", "mhw", ""},
		{"semicolon_kept_in_value", "lang=FR&filter=a;b", "FR", "mh3u", "a;b"},
		{"case_variant_last_wins", "lang=FR&LANG=JP", "JP", "mh3u", ""},
		{"repeated_last_wins", "game=mhw&game=mh4u", "EN", "mh4u", ""},
		{"escaped_value", "filter=rath%2C+%3Ddeviljho", "EN", "mh3u", "rath,=deviljho"},
		{"bare_key_and_empty_pairs", "&&lang&game=mhxx&", "EN", "mhxx", ""},
		{"empty", "", "EN", "mh3u", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t, nil)
			store.ApplyQuery(tt.query)

			assert.Equal(t, tt.language, store.Language())
			assert.Equal(t, tt.game, store.Game().ID)
			assert.Equal(t, tt.filter, store.Filter())
		})
	}
}
