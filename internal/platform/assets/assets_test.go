// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package assets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mhinfo/internal/platform/apperr"
	"github.com/taibuivan/mhinfo/internal/platform/assets"
	"github.com/taibuivan/mhinfo/internal/platform/config"
)

/*
TestEmbedSource verifies the bundled samples cover every default game.
*/
func TestEmbedSource(t *testing.T) {
	source := assets.NewEmbedSource()
	ctx := context.Background()

	for _, name := range []string{"localization.json", "data/mh3u.json", "data/mh4u.json", "data/mhxx.json", "data/mhw.json"} {
		data, err := source.Fetch(ctx, name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data)
	}

	_, err := source.Fetch(ctx, "data/mhgu.json")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestFSSource_RejectsTraversal(t *testing.T) {
	source := assets.NewFSSource(fstest.MapFS{"data/a.json": {Data: []byte("[]")}})

	_, err := source.Fetch(context.Background(), "../secret.json")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	data, err := source.Fetch(context.Background(), "./data/a.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFSSource_CancelledContext(t *testing.T) {
	source := assets.NewFSSource(fstest.MapFS{"a.json": {Data: []byte("[]")}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Fetch(ctx, "a.json")
	assert.True(t, apperr.HasCode(err, apperr.CodeFetchFailed))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirSource(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "mhw.json"), []byte(`[{"names":{"EN":"Nergigante"}}]`), 0o600))

	source := assets.NewDirSource(root)

	data, err := source.Fetch(context.Background(), "data/mhw.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Nergigante")

	_, err = source.Fetch(context.Background(), "data/mh4u.json")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestHTTPSource covers success, missing assets and server errors.
*/
func TestHTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/assets/data/mhw.json":
			_, _ = w.Write([]byte(`[]`))
		case "/assets/localization.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	source, err := assets.NewHTTPSource(server.URL+"/assets", server.Client())
	require.NoError(t, err)

	data, err := source.Fetch(context.Background(), "data/mhw.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	_, err = source.Fetch(context.Background(), "data/mh3u.json")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = source.Fetch(context.Background(), "localization.json")
	assert.True(t, apperr.HasCode(err, apperr.CodeFetchFailed))
}

func TestNewHTTPSource_InvalidScheme(t *testing.T) {
	_, err := assets.NewHTTPSource("ftp://example.com/assets", nil)
	assert.Error(t, err)
}

func TestNew_PicksSource(t *testing.T) {
	source, err := assets.New(&config.Config{})
	require.NoError(t, err)
	assert.IsType(t, &assets.FSSource{}, source)

	source, err = assets.New(&config.Config{AssetsDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &assets.DirSource{}, source)

	source, err = assets.New(&config.Config{AssetsDir: "/ignored", AssetsURL: "https://example.com/assets"})
	require.NoError(t, err)
	assert.IsType(t, &assets.HTTPSource{}, source)
}
