// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package assets abstracts where the static JSON assets (datasets and the
localization table) come from.

Sources:

  - EmbedSource: the sample assets bundled into the binary (default).
  - DirSource: a local directory laid out like the web assets folder.
  - HTTPSource: a base URL serving the same layout.

All sources return the raw bytes; decoding belongs to the consumers.
*/
package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/taibuivan/mhinfo/internal/platform/apperr"
	"github.com/taibuivan/mhinfo/internal/platform/config"
)

//go:embed sample
var sample embed.FS

// Source fetches an asset by its slash-separated relative name
// (e.g. "data/mhw.json").
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// New picks the source configured by cfg: URL first, then directory, then
// the embedded samples.
func New(cfg *config.Config) (Source, error) {
	switch {
	case cfg.AssetsURL != "":
		return NewHTTPSource(cfg.AssetsURL, &http.Client{Timeout: cfg.FetchTimeout})
	case cfg.AssetsDir != "":
		return NewDirSource(cfg.AssetsDir), nil
	default:
		return NewEmbedSource(), nil
	}
}

// cleanName rejects names escaping the asset root.
func cleanName(name string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimSpace(name))[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(strings.TrimSpace(name), "./") {
		return "", apperr.NotFound(fmt.Sprintf("Asset %q", name))
	}
	return cleaned, nil
}

// # Embedded Source

// FSSource serves assets from an [fs.FS].
type FSSource struct {
	files fs.FS
}

// NewEmbedSource serves the bundled sample assets.
func NewEmbedSource() *FSSource {
	sub, err := fs.Sub(sample, "sample")
	if err != nil {
		// The directive above guarantees the directory exists.
		panic("assets: missing embedded sample directory: " + err.Error())
	}
	return &FSSource{files: sub}
}

// NewFSSource serves assets from any file system (tests use fstest.MapFS).
func NewFSSource(files fs.FS) *FSSource {
	return &FSSource{files: files}
}

// Fetch implements [Source].
func (source *FSSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.FetchFailed(name, err)
	}

	cleaned, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(source.files, cleaned)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound(fmt.Sprintf("Asset %q", name))
		}
		return nil, apperr.FetchFailed(name, err)
	}
	return data, nil
}

// # Directory Source

// DirSource serves assets from a local directory.
type DirSource struct {
	root string
}

// NewDirSource serves assets below root.
func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

// Fetch implements [Source].
func (source *DirSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.FetchFailed(name, err)
	}

	cleaned, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(source.root, filepath.FromSlash(cleaned)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound(fmt.Sprintf("Asset %q", name))
		}
		return nil, apperr.FetchFailed(name, err)
	}
	return data, nil
}

// # HTTP Source

// maxAssetSize bounds a single downloaded asset.
const maxAssetSize = 16 << 20

// HTTPSource serves assets from a static web host.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPSource serves assets below baseURL using client
// (a client with a 10s timeout when nil).
func NewHTTPSource(baseURL string, client *http.Client) (*HTTPSource, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("assets: invalid base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("assets: unsupported URL scheme %q", base.Scheme)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSource{base: base, client: client}, nil
}

// Fetch implements [Source].
func (source *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	cleaned, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	target := source.base.ResolveReference(&url.URL{Path: cleaned})
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, apperr.FetchFailed(name, err)
	}

	response, err := source.client.Do(request)
	if err != nil {
		return nil, apperr.FetchFailed(name, err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusNotFound:
		return nil, apperr.NotFound(fmt.Sprintf("Asset %q", name))
	case response.StatusCode < 200 || response.StatusCode > 299:
		return nil, apperr.FetchFailed(name, fmt.Errorf("unexpected status %s", response.Status))
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, maxAssetSize))
	if err != nil {
		return nil, apperr.FetchFailed(name, err)
	}
	return data, nil
}
