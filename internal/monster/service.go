// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package monster

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/taibuivan/mhinfo/internal/platform/assets"
	"github.com/taibuivan/mhinfo/internal/platform/constants"
	"github.com/taibuivan/mhinfo/pkg/fold"
)

// # Service Layer

// Service loads game datasets from an asset source.
type Service struct {
	source assets.Source
	logger zerolog.Logger
}

// NewService constructs a new monster [Service].
func NewService(source assets.Source, logger zerolog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger.With().Str("component", "monster").Logger(),
	}
}

// FileName derives the dataset asset name of a game: "data/<game>.json".
func FileName(gameID string) string {
	return path.Join(constants.DataDir, fold.Slug(strings.ToLower(gameID))+constants.DatasetExt)
}

/*
Load fetches and parses the dataset of a game.

Parameters:
  - context: cancels the fetch
  - gameID: catalog identifier (e.g. "mhw")

Returns:
  - []Record: the whole dataset
  - error: FETCH_FAILED / NOT_FOUND from the source, INVALID_FORMAT from parsing
*/
func (service *Service) Load(context context.Context, gameID string) ([]Record, error) {
	name := FileName(gameID)

	data, err := service.source.Fetch(context, name)
	if err != nil {
		service.logger.Error().Err(err).Str("game", gameID).Str("file", name).Msg("dataset_fetch_failed")
		return nil, fmt.Errorf("monster: load %s: %w", gameID, err)
	}

	records, err := Parse(data)
	if err != nil {
		service.logger.Error().Err(err).Str("game", gameID).Str("file", name).Msg("dataset_invalid")
		return nil, fmt.Errorf("monster: load %s: %w", gameID, err)
	}

	service.logger.Debug().Str("game", gameID).Int("monsters", len(records)).Msg("dataset_loaded")
	return records, nil
}
