// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mhinfo/internal/settings"
)

func TestEncode(t *testing.T) {
	blob := settings.Encode(settings.Settings{
		Game:        "mhw",
		Language:    "FR",
		DisplayMode: settings.Shaded,
		Types:       []string{"a", "b"},
	})
	assert.Equal(t, "game:mhw|lang:FR|filterMode:SHADE|types:a%3Bb", blob)
}

/*
TestDecode covers the malformed and repeated pair rules.
*/
func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"basic", "game:mhw|lang:FR", map[string]string{"game": "mhw", "lang": "FR"}},
		{"last_write_wins", "game:mhw|game:mh4u", map[string]string{"game": "mh4u"}},
		{"no_colon", "game|lang:FR", map[string]string{"lang": "FR"}},
		{"two_colons", "game:a:b|lang:FR", map[string]string{"lang": "FR"}},
		{"empty_value", "types:", map[string]string{"types": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, settings.Decode(tt.blob))
		})
	}
}

func TestDecodeTypes(t *testing.T) {
	types, err := settings.DecodeTypes("flying-wyvern%3Belder+dragon%3B")
	require.NoError(t, err)
	assert.Equal(t, []string{"flying-wyvern", "elder dragon"}, types)

	types, err = settings.DecodeTypes("")
	require.NoError(t, err)
	assert.Empty(t, types)

	_, err = settings.DecodeTypes("%zz")
	assert.Error(t, err)
}

func TestParseDisplayMode(t *testing.T) {
	mode, ok := settings.ParseDisplayMode("shade")
	assert.True(t, ok)
	assert.Equal(t, settings.Shaded, mode)

	mode, ok = settings.ParseDisplayMode("HIDE")
	assert.True(t, ok)
	assert.Equal(t, settings.Hidden, mode)

	_, ok = settings.ParseDisplayMode("blur")
	assert.False(t, ok)
}

func TestFilePersister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings")
	persister, err := settings.NewFilePersister(path)
	require.NoError(t, err)
	assert.Equal(t, path, persister.Path())

	blob, err := persister.Load()
	require.NoError(t, err)
	assert.Empty(t, blob)

	require.NoError(t, persister.Save("game:mhw"))
	blob, err = persister.Load()
	require.NoError(t, err)
	assert.Equal(t, "game:mhw", blob)
}
