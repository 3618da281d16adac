// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package root

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/taibuivan/mhinfo/internal/browser"
	"github.com/taibuivan/mhinfo/internal/localization"
	"github.com/taibuivan/mhinfo/internal/monster"
	"github.com/taibuivan/mhinfo/internal/platform/assets"
	"github.com/taibuivan/mhinfo/internal/platform/config"
	"github.com/taibuivan/mhinfo/internal/platform/logger"
	"github.com/taibuivan/mhinfo/internal/search"
	"github.com/taibuivan/mhinfo/internal/settings"
	"github.com/taibuivan/mhinfo/pkg/fold"
)

// app is the wired object graph of one command invocation.
type app struct {
	logger  zerolog.Logger
	store   *settings.Store
	texts   *localization.Store
	session *browser.Session
}

// openApp wires configuration, settings, localization and the session.
// The dataset is not loaded yet; see [app.start].
func openApp(ctx context.Context, flags *globalFlags, options ...browser.Option) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(cfg, os.Stderr)
	log.Debug().Str("environment", cfg.Environment).Msg("configuration_loaded")

	catalog, err := openCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}

	persister, err := settings.NewFilePersister(cfg.SettingsPath)
	if err != nil {
		return nil, nil, err
	}

	store, err := settings.NewStore(catalog, persister, log)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Restore(); err != nil {
		log.Warn().Err(err).Msg("settings_ignored")
	}
	if err := applyFlags(store, flags); err != nil {
		return nil, nil, err
	}

	source, err := assets.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	texts := localization.NewStore(store.Language(), log)
	if err := texts.Load(ctx, source); err != nil {
		log.Warn().Err(err).Msg("localization_unavailable")
	}

	var folder fold.Func = fold.Key
	if cfg.WideFolding {
		folder = fold.Wide
	}

	session := browser.New(store, monster.NewService(source, log), texts, search.NewEngine(folder), log, options...)

	return &app{
		logger:  log,
		store:   store,
		texts:   texts,
		session: session,
	}, session.Close, nil
}

func openCatalog(cfg *config.Config) (*config.Catalog, error) {
	if cfg.CatalogPath != "" {
		return config.LoadCatalog(cfg.CatalogPath)
	}
	return config.DefaultCatalog()
}

// applyFlags applies the bootstrap query, then the explicit flags.
func applyFlags(store *settings.Store, flags *globalFlags) error {
	if flags.query != "" {
		store.ApplyQuery(flags.query)
	}
	if flags.game != "" {
		if err := store.SetGame(flags.game); err != nil {
			return fmt.Errorf("--game %s: %w", flags.game, err)
		}
	}
	if flags.language != "" {
		if err := store.SetLanguage(flags.language); err != nil {
			return fmt.Errorf("--lang %s: %w", flags.language, err)
		}
	}
	if flags.allLanguages {
		store.SetAllLanguages(true)
	}
	if flags.types != nil {
		store.SetTypes(flags.types)
	}
	if flags.shade {
		store.SetDisplayMode(settings.Shaded)
	}
	return nil
}

// start loads the selected dataset and applies the filter given as
// positional arguments, joined with ','.
func (a *app) start(ctx context.Context, args []string) error {
	a.session.Start(ctx)
	if a.session.Game() == "" {
		return fmt.Errorf("no dataset for %s", a.store.Game().ID)
	}
	if len(args) > 0 {
		a.store.SetFilter(strings.Join(args, ","))
	}
	a.logger.Debug().Str("game", a.session.Game()).Int("listed", len(a.session.Listed())).Msg("session_ready")
	return nil
}

// writeJSON encodes v as indented JSON.
func writeJSON(out io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
