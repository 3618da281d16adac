// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package localization_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mhinfo/internal/localization"
	"github.com/taibuivan/mhinfo/internal/platform/apperr"
	"github.com/taibuivan/mhinfo/internal/platform/assets"
	"github.com/taibuivan/mhinfo/internal/platform/logger"
)

const table = `{
	"EN": { "NO_MONSTER": "no monster", "FIRE": "Fire", "EMPTY": "" },
	"FR": { "NO_MONSTER": "aucun monstre" }
}`

/*
TestTranslate_NotReady verifies that lookups fail loudly before loading.
*/
func TestTranslate_NotReady(t *testing.T) {
	store := localization.NewStore("EN", logger.Nop())

	_, err := store.Translate("NO_MONSTER")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotReady))
	assert.False(t, store.Ready())
}

func TestTranslate(t *testing.T) {
	store := localization.NewStore("EN", logger.Nop())
	require.NoError(t, store.LoadBytes([]byte(table)))

	tests := []struct {
		name     string
		language string
		key      string
		want     string
	}{
		{"present", "EN", "NO_MONSTER", "no monster"},
		{"missing_key", "EN", "WATER", "<<WATER>>"},
		{"empty_text", "EN", "EMPTY", "<<EMPTY>>"},
		{"other_language", "FR", "NO_MONSTER", "aucun monstre"},
		{"missing_in_language", "FR", "FIRE", "<<FIRE>>"},
		{"missing_language", "JP", "FIRE", "<<FIRE>>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.SetLanguage(tt.language)
			got, err := store.Translate(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestTranslate_MemoInvalidatedOnLanguageChange guards against stale memoized
lookups after switching language.
*/
func TestTranslate_MemoInvalidatedOnLanguageChange(t *testing.T) {
	store := localization.NewStore("EN", logger.Nop())
	require.NoError(t, store.LoadBytes([]byte(table)))

	got, _ := store.Translate("NO_MONSTER")
	assert.Equal(t, "no monster", got)

	store.SetLanguage("FR")
	got, _ = store.Translate("NO_MONSTER")
	assert.Equal(t, "aucun monstre", got)
	assert.Equal(t, "FR", store.Language())
}

func TestLoad(t *testing.T) {
	store := localization.NewStore("EN", logger.Nop())

	err := store.Load(context.Background(), assets.NewFSSource(fstest.MapFS{}))
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.False(t, store.Ready())

	err = store.Load(context.Background(), assets.NewFSSource(fstest.MapFS{
		"localization.json": {Data: []byte(`["EN"]`)},
	}))
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidFormat))
	assert.False(t, store.Ready())

	require.NoError(t, store.Load(context.Background(), assets.NewEmbedSource()))
	assert.True(t, store.Ready())
	assert.Equal(t, []string{"EN", "FR", "JP"}, store.Languages())

	got, err := store.Translate("N_MONSTERS")
	require.NoError(t, err)
	assert.Equal(t, " monsters", got)
}
