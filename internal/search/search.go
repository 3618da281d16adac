// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search decides which monsters of a dataset are visible.

It compiles a comma-separated filter expression and evaluates it against
monster names, either in the active language only or in every language, then
combines the result with the type filter.

Per-monster state (visibility and the cached folded name) lives in [View].
*/
package search

import (
	"strings"

	"github.com/taibuivan/mhinfo/internal/monster"
	"github.com/taibuivan/mhinfo/pkg/fold"
)

// # View State

// View is the mutable UI state of one monster record.
type View struct {
	Record  *monster.Record
	Visible bool

	key         string
	keyLanguage string
	keyed       bool
}

// NewViews wraps records into views, all visible.
func NewViews(records []monster.Record) []*View {
	views := make([]*View, len(records))
	for i := range records {
		views[i] = &View{Record: &records[i], Visible: true}
	}
	return views
}

// Name returns the display name of the record in language.
func (view *View) Name(language string) string {
	return view.Record.Name(language)
}

// Key returns the folded display name for language, computing and caching
// it on first use.
func (view *View) Key(language string, folder fold.Func) string {
	if !view.keyed || view.keyLanguage != language {
		view.key = folder(view.Name(language))
		view.keyLanguage = language
		view.keyed = true
	}
	return view.key
}

// InvalidateKeys drops every cached folded name.
func InvalidateKeys(views []*View) {
	for _, view := range views {
		view.key, view.keyLanguage, view.keyed = "", "", false
	}
}

// # Engine

// Query is everything that decides visibility.
type Query struct {
	Filter       string
	Language     string
	AllLanguages bool
	Types        []string
}

// Engine evaluates queries against views.
type Engine struct {
	folder fold.Func
}

// NewEngine returns an engine folding names with folder ([fold.Key] when nil).
func NewEngine(folder fold.Func) *Engine {
	if folder == nil {
		folder = fold.Key
	}
	return &Engine{folder: folder}
}

// Folder returns the folding strategy of the engine.
func (engine *Engine) Folder() fold.Func {
	return engine.folder
}

// Apply sets the visibility of every view and returns the visible count.
//
// # Rules
//
//   - No token and no type selected: everything is visible.
//   - Otherwise a monster is visible when its type is selected (or no type
//     is selected) and, if there are tokens, at least one token matches one
//     of its names.
func (engine *Engine) Apply(views []*View, query Query) int {
	filter := Compile(query.Filter)

	if filter.Empty() && len(query.Types) == 0 {
		return ShowAll(views)
	}

	types := make(map[string]bool, len(query.Types))
	for _, t := range query.Types {
		types[t] = true
	}

	visible := 0
	for _, view := range views {
		view.Visible = engine.matches(view, filter, types, query)
		if view.Visible {
			visible++
		}
	}
	return visible
}

func (engine *Engine) matches(view *View, filter Filter, types map[string]bool, query Query) bool {
	if len(types) > 0 && !types[view.Record.Type] {
		return false
	}
	if filter.Empty() {
		return true
	}

	if !query.AllLanguages {
		raw := strings.ToLower(view.Name(query.Language))
		return filter.Matches(raw, view.Key(query.Language, engine.folder))
	}

	for _, name := range view.Record.Names {
		if filter.Matches(strings.ToLower(name.Value), engine.folder(name.Value)) {
			return true
		}
	}
	return false
}

// ShowAll marks every view visible and returns their count.
func ShowAll(views []*View) int {
	for _, view := range views {
		view.Visible = true
	}
	return len(views)
}
