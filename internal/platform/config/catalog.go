// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/mhinfo/internal/platform/apperr"
	"github.com/taibuivan/mhinfo/internal/platform/validate"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// # Catalog Schema

// Game is one selectable title of the series.
type Game struct {
	// ID is the lowercase file name part of the dataset (e.g. "mhw").
	ID    string `yaml:"id"    json:"id"`
	Title string `yaml:"title" json:"title"`
}

// Catalog lists every game and language the browser can select.
// Order matters: the first entry of each list is the default selection.
type Catalog struct {
	Games     []Game   `yaml:"games"     json:"games"`
	Languages []string `yaml:"languages" json:"languages"`
}

// # Catalog Loading

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a YAML catalog from path, or the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	catalog := &Catalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, apperr.InvalidFormat("config: invalid catalog document", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Validate checks that the catalog can seed a selection.
func (catalog *Catalog) Validate() error {
	if len(catalog.Games) == 0 || len(catalog.Languages) == 0 {
		return apperr.InvalidCatalog("config: catalog needs at least one game and one language")
	}

	v := &validate.Validator{}
	seen := make(map[string]bool, len(catalog.Games))
	for i, game := range catalog.Games {
		field := fmt.Sprintf("games[%d]", i)
		v.Slug(field+".id", game.ID).
			Required(field+".title", game.Title).
			MaxLen(field+".title", game.Title, 64).
			Custom(field+".id", seen[game.ID], "Duplicate game id")
		seen[game.ID] = true
	}
	for i, language := range catalog.Languages {
		v.Required(fmt.Sprintf("languages[%d]", i), language)
	}
	return v.Err()
}

// FindGame returns the catalog entry whose id matches (case-insensitively).
func (catalog *Catalog) FindGame(id string) (Game, bool) {
	for _, game := range catalog.Games {
		if strings.EqualFold(game.ID, strings.TrimSpace(id)) {
			return game, true
		}
	}
	return Game{}, false
}

// FindLanguage returns the canonical spelling of a language code (case-insensitively).
func (catalog *Catalog) FindLanguage(code string) (string, bool) {
	for _, language := range catalog.Languages {
		if strings.EqualFold(language, strings.TrimSpace(code)) {
			return language, true
		}
	}
	return "", false
}
