// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/mhinfo/internal/monster"
	"github.com/taibuivan/mhinfo/internal/search"
	"github.com/taibuivan/mhinfo/pkg/fold"
)

func names(pairs ...string) []monster.LocalizedName {
	out := make([]monster.LocalizedName, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, monster.LocalizedName{Language: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func fixture() []monster.Record {
	return []monster.Record{
		{Names: names("EN", "Rathalos", "FR", "Rathalos", "JP", "リオレウス"), Type: "flying-wyvern"},
		{Names: names("EN", "Rathalos Subspecies", "FR", "Rathalos azur", "JP", "リオレウス亜種"), Type: "flying-wyvern"},
		{Names: names("EN", "Deviljho", "FR", "Déviljho", "JP", "イビルジョー"), Type: "brute-wyvern"},
		{Names: names("EN", "Oestroth", "FR", "Œstroth")},
		{Names: names("EN", "Kirin"), Type: "elder-dragon"},
	}
}

func visible(views []*search.View, language string) []string {
	var out []string
	for _, view := range views {
		if view.Visible {
			out = append(out, view.Name(language))
		}
	}
	return out
}

/*
TestApply_CurrentLanguage covers the current-language matching policy.
*/
func TestApply_CurrentLanguage(t *testing.T) {
	tests := []struct {
		name     string
		language string
		filter   string
		want     []string
	}{
		{"exact", "EN", "=rathalos", []string{"Rathalos"}},
		{"substring", "EN", "ratha", []string{"Rathalos", "Rathalos Subspecies"}},
		{"folded", "FR", "deviljho", []string{"Déviljho"}},
		{"accented", "FR", "déviljho", []string{"Déviljho"}},
		{"ligature", "FR", "oestroth", []string{"Œstroth"}},
		{"any_token", "EN", "kirin, =deviljho", []string{"Deviljho", "Kirin"}},
		{"regional", "JP", "リオレウス亜種、イビル", []string{"リオレウス亜種", "イビルジョー"}},
		{"other_language_ignored", "EN", "リオレウス", nil},
		{"placeholder_searchable", "JP", "kirin", []string{"<<[EN] Kirin>>"}},
		{"no_match", "EN", "nergigante", nil},
	}

	engine := search.NewEngine(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views := search.NewViews(fixture())
			engine.Apply(views, search.Query{Filter: tt.filter, Language: tt.language})
			assert.Equal(t, tt.want, visible(views, tt.language))
		})
	}
}

func TestApply_AllLanguages(t *testing.T) {
	engine := search.NewEngine(nil)
	views := search.NewViews(fixture())

	count := engine.Apply(views, search.Query{Filter: "リオレウス", Language: "EN", AllLanguages: true})
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"Rathalos", "Rathalos Subspecies"}, visible(views, "EN"))

	count = engine.Apply(views, search.Query{Filter: "=rathalos azur", Language: "EN", AllLanguages: true})
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"Rathalos Subspecies"}, visible(views, "EN"))
}

/*
TestApply_Types covers the type filter alone and combined with tokens.
*/
func TestApply_Types(t *testing.T) {
	engine := search.NewEngine(nil)
	views := search.NewViews(fixture())

	engine.Apply(views, search.Query{Language: "EN", Types: []string{"flying-wyvern", "elder-dragon"}})
	assert.Equal(t, []string{"Rathalos", "Rathalos Subspecies", "Kirin"}, visible(views, "EN"))

	engine.Apply(views, search.Query{Filter: "sub", Language: "EN", Types: []string{"flying-wyvern"}})
	assert.Equal(t, []string{"Rathalos Subspecies"}, visible(views, "EN"))

	engine.Apply(views, search.Query{Filter: "kirin", Language: "EN", Types: []string{"brute-wyvern"}})
	assert.Nil(t, visible(views, "EN"))
}

func TestApply_ResetShortcut(t *testing.T) {
	engine := search.NewEngine(nil)
	views := search.NewViews(fixture())

	engine.Apply(views, search.Query{Filter: "kirin", Language: "EN"})
	assert.Len(t, visible(views, "EN"), 1)

	assert.Equal(t, 5, engine.Apply(views, search.Query{Filter: "", Language: "EN"}))
	assert.Equal(t, 5, engine.Apply(views, search.Query{Filter: " , ", Language: "EN"}))
}

/*
TestView_KeyCache verifies that cached keys follow the requested language and
are dropped by InvalidateKeys.
*/
func TestView_KeyCache(t *testing.T) {
	calls := 0
	folder := func(s string) string {
		calls++
		return fold.Key(s)
	}

	views := search.NewViews(fixture())
	deviljho := views[2]

	assert.Equal(t, "deviljho", deviljho.Key("FR", folder))
	assert.Equal(t, "deviljho", deviljho.Key("FR", folder))
	assert.Equal(t, 1, calls)

	assert.Equal(t, "イビルジョー", deviljho.Key("JP", folder))
	assert.Equal(t, 2, calls)

	search.InvalidateKeys(views)
	deviljho.Key("JP", folder)
	assert.Equal(t, 3, calls)
}

func TestEngine_WideFolder(t *testing.T) {
	records := []monster.Record{{Names: names("EN", "Ōmagatoki")}}
	views := search.NewViews(records)

	search.NewEngine(nil).Apply(views, search.Query{Filter: "omaga", Language: "EN"})
	assert.False(t, views[0].Visible)

	search.InvalidateKeys(views)
	search.NewEngine(fold.Wide).Apply(views, search.Query{Filter: "omaga", Language: "EN"})
	assert.True(t, views[0].Visible)
}
