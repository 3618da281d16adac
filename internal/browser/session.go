// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package browser wires the settings store to the dataset, the filter engine
and the aggregate statistics.

A [Session] reacts to the store's events:

  - game change: load the game's dataset, then reapply the filter;
  - language change: switch the localization language, drop cached keys,
    reapply the filter;
  - all-languages or type change: reapply the filter;
  - filter event: recompute visibility and the summary.

Dataset loads are ticketed. Starting a load cancels the previous one and
only the result carrying the current ticket is committed, so a slow
response can never replace a newer selection. A failed load keeps the
previous list.
*/
package browser

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taibuivan/mhinfo/internal/localization"
	"github.com/taibuivan/mhinfo/internal/monster"
	"github.com/taibuivan/mhinfo/internal/platform/config"
	"github.com/taibuivan/mhinfo/internal/platform/event"
	"github.com/taibuivan/mhinfo/internal/search"
	"github.com/taibuivan/mhinfo/internal/settings"
	"github.com/taibuivan/mhinfo/internal/stats"
	"github.com/taibuivan/mhinfo/pkg/ticket"
)

// Loader loads the dataset of a game. [*monster.Service] implements it.
type Loader interface {
	Load(context context.Context, gameID string) ([]monster.Record, error)
}

// Load is one ticketed dataset request.
type Load struct {
	Ticket  ticket.Ticket
	GameID  string
	Context context.Context
}

// Scheduler runs a load. It may fetch on another goroutine but must hand
// the result back to [Session.Commit] on the session's goroutine.
type Scheduler func(load Load)

// Option configures a [Session].
type Option func(session *Session)

// WithScheduler replaces the default synchronous load scheduler.
func WithScheduler(scheduler Scheduler) Option {
	return func(session *Session) {
		session.schedule = scheduler
	}
}

// Session is the browsing state of one user.
//
// # Concurrency
//
// Session is not safe for concurrent use. Only [Session.Fetch] may run on
// another goroutine.
type Session struct {
	store  *settings.Store
	loader Loader
	texts  *localization.Store
	engine *search.Engine
	logger zerolog.Logger

	base     context.Context
	schedule Scheduler

	records    []monster.Record
	views      []*search.View
	summary    stats.Summary
	loadedGame string

	current ticket.Ticket
	cancel  context.CancelFunc

	subscriptions []*event.Subscription
	changed       event.Event[stats.Summary]
}

// New builds a session and registers it on store. Call [Session.Start] to
// load the selected game and [Session.Close] to detach.
func New(store *settings.Store, loader Loader, texts *localization.Store, engine *search.Engine, logger zerolog.Logger, options ...Option) *Session {
	session := &Session{
		store:   store,
		loader:  loader,
		texts:   texts,
		engine:  engine,
		logger:  logger.With().Str("component", "browser").Logger(),
		base:    context.Background(),
		views:   []*search.View{},
		summary: stats.Compute(nil, store.Language(), engine.Folder()),
	}
	session.schedule = session.runNow

	for _, option := range options {
		option(session)
	}

	texts.SetLanguage(store.Language())

	session.subscriptions = []*event.Subscription{
		store.OnGameChanged(session.onGameChanged),
		store.OnLanguageChanged(session.onLanguageChanged),
		store.OnAllLanguagesChanged(func(bool) { store.ReapplySearchFilter() }),
		store.OnTypesChanged(func([]string) { store.ReapplySearchFilter() }),
		store.OnDisplayModeChanged(func(settings.DisplayMode) { session.changed.Raise(session.summary) }),
		store.OnFilterChanged(session.onFilterChanged),
	}

	return session
}

// Start loads the selected game. Loads begun later derive from context.
func (session *Session) Start(context context.Context) {
	session.base = context
	session.schedule(session.BeginLoad(session.store.Game().ID))
}

// Close cancels any in-flight load and detaches the session from the store.
func (session *Session) Close() {
	if session.cancel != nil {
		session.cancel()
		session.cancel = nil
	}
	for _, subscription := range session.subscriptions {
		session.store.Unregister(subscription)
	}
	session.subscriptions = nil
}

// # Loading

// BeginLoad issues a new ticket for gameID and cancels the previous load.
func (session *Session) BeginLoad(gameID string) Load {
	if session.cancel != nil {
		session.cancel()
	}

	loadContext, cancel := context.WithCancel(session.base)
	session.cancel = cancel
	session.current = ticket.New()

	session.logger.Debug().Str("game", gameID).Str("ticket", session.current.String()).Msg("dataset_load_started")
	return Load{Ticket: session.current, GameID: gameID, Context: loadContext}
}

// Fetch runs the loader for load. It touches no session state.
func (session *Session) Fetch(load Load) ([]monster.Record, error) {
	return session.loader.Load(load.Context, load.GameID)
}

// Commit installs the result of load and reports whether it was accepted.
//
// Results of superseded loads are dropped. A failed current load is logged
// and leaves the previous dataset in place.
func (session *Session) Commit(load Load, records []monster.Record, err error) bool {
	if load.Ticket != session.current {
		session.logger.Debug().Str("game", load.GameID).Str("ticket", load.Ticket.String()).Msg("dataset_stale_result")
		return false
	}

	session.current = ticket.Ticket{}
	if session.cancel != nil {
		session.cancel()
		session.cancel = nil
	}

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			session.logger.Error().Err(err).Str("game", load.GameID).Msg("dataset_load_failed")
		}
		session.changed.Raise(session.summary)
		return false
	}

	session.records = records
	session.views = search.NewViews(records)
	session.loadedGame = load.GameID
	session.logger.Info().Str("game", load.GameID).Int("monsters", len(records)).Msg("dataset_committed")

	session.store.ReapplySearchFilter()
	return true
}

// Loading reports whether a load is in flight.
func (session *Session) Loading() bool {
	return !session.current.IsZero()
}

func (session *Session) runNow(load Load) {
	records, err := session.Fetch(load)
	session.Commit(load, records, err)
}

// # Event Handlers

func (session *Session) onGameChanged(game config.Game) {
	session.schedule(session.BeginLoad(game.ID))
}

func (session *Session) onLanguageChanged(language string) {
	session.texts.SetLanguage(language)
	search.InvalidateKeys(session.views)
	session.store.ReapplySearchFilter()
}

func (session *Session) onFilterChanged(text string) {
	session.refresh(text)
}

// refresh recomputes visibility and the summary for filter text.
func (session *Session) refresh(text string) {
	language := session.store.Language()
	session.engine.Apply(session.views, search.Query{
		Filter:       text,
		Language:     language,
		AllLanguages: session.store.AllLanguages(),
		Types:        session.store.Types(),
	})
	session.summary = stats.Compute(session.views, language, session.engine.Folder())
	session.changed.Raise(session.summary)
}

// # Accessors

// OnChanged registers handler for every recomputation of the summary.
func (session *Session) OnChanged(handler event.Handler[stats.Summary]) *event.Subscription {
	return session.changed.Register(handler)
}

// Unregister removes a registration made with [Session.OnChanged].
func (session *Session) Unregister(subscription *event.Subscription) bool {
	return session.changed.Unregister(subscription)
}

// Game returns the id of the game whose dataset is displayed.
func (session *Session) Game() string {
	return session.loadedGame
}

// Views returns every monster of the dataset with its visibility.
func (session *Session) Views() []*search.View {
	return session.views
}

// Listed returns the views to display under the current display mode:
// only visible ones when hiding, all of them when shading.
func (session *Session) Listed() []*search.View {
	if session.store.DisplayMode() == settings.Shaded {
		return session.views
	}
	listed := make([]*search.View, 0, len(session.views))
	for _, view := range session.views {
		if view.Visible {
			listed = append(listed, view)
		}
	}
	return listed
}

// Summary returns the aggregate of the visible monsters.
func (session *Session) Summary() stats.Summary {
	return session.summary
}

// Types returns the type tags present in the dataset.
func (session *Session) Types() []string {
	return monster.Types(session.records)
}

// CountString renders the distinct monster count in the active language.
func (session *Session) CountString() (string, error) {
	return stats.CountString(session.summary, session.texts)
}

// Store returns the settings store the session observes.
func (session *Session) Store() *settings.Store {
	return session.store
}

// Texts returns the localization store.
func (session *Session) Texts() *localization.Store {
	return session.texts
}
