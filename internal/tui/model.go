// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taibuivan/mhinfo/internal/attribute"
	"github.com/taibuivan/mhinfo/internal/browser"
	"github.com/taibuivan/mhinfo/internal/monster"
	"github.com/taibuivan/mhinfo/internal/search"
	"github.com/taibuivan/mhinfo/internal/settings"
	"github.com/taibuivan/mhinfo/internal/ui"
	"github.com/taibuivan/mhinfo/pkg/pagination"
	"github.com/taibuivan/mhinfo/pkg/slice"
)

type browseModel struct {
	ctx     context.Context
	session *browser.Session
	loads   *Loads

	width  int
	height int

	input    string
	selected int

	lastLog string
}

type loadedMsg struct {
	load    browser.Load
	records []monster.Record
	err     error
}

func newBrowseModel(ctx context.Context, session *browser.Session, loads *Loads) browseModel {
	return browseModel{
		ctx:     ctx,
		session: session,
		loads:   loads,
		input:   session.Store().Filter(),
		lastLog: "Loading…",
	}
}

func (m browseModel) Init() tea.Cmd {
	m.session.Start(m.ctx)
	return m.loadCmds()
}

// loadCmds turns queued loads into fetch commands.
func (m browseModel) loadCmds() tea.Cmd {
	pending := m.loads.drain()
	if len(pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, load := range pending {
		cmds = append(cmds, func() tea.Msg {
			records, err := m.session.Fetch(load)
			return loadedMsg{load: load, records: records, err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		if m.session.Commit(msg.load, msg.records, msg.err) {
			m.lastLog = fmt.Sprintf("Loaded %s.", msg.load.GameID)
		} else if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.lastLog = "Load failed: " + msg.err.Error()
		}
		m.clampSelection()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	store := m.session.Store()

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.setFilter("")
	case tea.KeyBackspace:
		if runes := []rune(m.input); len(runes) > 0 {
			m.setFilter(string(runes[:len(runes)-1]))
		}
	case tea.KeyRunes, tea.KeySpace:
		m.setFilter(m.input + string(msg.Runes))
	case tea.KeyTab:
		store.SetAllLanguages(!store.AllLanguages())
	case tea.KeyCtrlG:
		m.cycleGame()
	case tea.KeyCtrlL:
		m.cycleLanguage()
	case tea.KeyCtrlT:
		m.cycleType()
	case tea.KeyCtrlD:
		if store.DisplayMode() == settings.Hidden {
			store.SetDisplayMode(settings.Shaded)
		} else {
			store.SetDisplayMode(settings.Hidden)
		}
	case tea.KeyUp:
		m.selected--
	case tea.KeyDown:
		m.selected++
	case tea.KeyPgUp:
		m.selected -= m.pageSize()
	case tea.KeyPgDown:
		m.selected += m.pageSize()
	}

	m.clampSelection()
	return m, m.loadCmds()
}

func (m *browseModel) setFilter(text string) {
	m.input = text
	m.session.Store().SetFilter(text)
	m.selected = 0
}

func (m *browseModel) cycleGame() {
	store := m.session.Store()
	games := store.Catalog().Games
	for i, game := range games {
		if game.ID == store.Game().ID {
			next := games[(i+1)%len(games)]
			if err := store.SetGame(next.ID); err != nil {
				m.lastLog = err.Error()
				return
			}
			m.lastLog = "Loading " + next.Title + "…"
			return
		}
	}
}

func (m *browseModel) cycleLanguage() {
	store := m.session.Store()
	languages := store.Catalog().Languages
	i := slices.Index(languages, store.Language())
	if err := store.SetLanguage(languages[(i+1)%len(languages)]); err != nil {
		m.lastLog = err.Error()
	}
}

// cycleType steps the type filter through none, then each dataset type alone.
func (m *browseModel) cycleType() {
	store := m.session.Store()
	types := m.session.Types()
	if len(types) == 0 {
		store.SetTypes(nil)
		return
	}

	current := store.Types()
	next := 0
	if len(current) == 1 {
		next = slices.Index(types, current[0]) + 1
	}
	if next >= len(types) {
		store.SetTypes(nil)
		return
	}
	store.SetTypes([]string{types[next]})
}

func (m browseModel) pageSize() int {
	size := m.height - 12
	if size < 5 {
		size = 5
	}
	return size
}

func (m *browseModel) clampSelection() {
	total := len(m.session.Listed())
	if m.selected >= total {
		m.selected = total - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// # Rendering

func (m browseModel) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderInput(),
		m.renderList(),
		m.renderSummary(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func (m browseModel) renderHeader() string {
	store := m.session.Store()
	game := store.Game()

	parts := []string{
		ui.Heading(ui.IconMonster, "Monster Info"),
		ui.LabelValue("Game", game.Title),
		ui.LabelValue("Lang", store.Language()),
		ui.LabelValue("All languages", ui.Toggle(store.AllLanguages())),
		ui.LabelValue("Mode", store.DisplayMode()),
	}
	if types := store.Types(); len(types) > 0 {
		parts = append(parts, ui.LabelValue("Types", strings.Join(types, ", ")))
	}
	if m.session.Loading() {
		parts = append(parts, ui.Warn.Render("loading…"))
	}
	return strings.Join(parts, "  ")
}

func (m browseModel) renderInput() string {
	return ui.Key.Render(ui.IconSearch+" ") + m.input + ui.Muted.Render("▏")
}

func (m browseModel) renderList() string {
	listed := m.session.Listed()
	if len(listed) == 0 {
		return ui.Muted.Render("(no monster)")
	}

	limit := m.pageSize()
	page := pagination.New(m.selected/limit+1, limit)
	start, end := page.Bounds(len(listed))
	meta := pagination.NewMeta(page.Page, page.Limit, len(listed))

	language := m.session.Store().Language()
	texts := m.session.Texts()

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(listed[i], language, i == m.selected))
	}
	if i := m.selected; i >= start && i < end {
		lines = append(lines, "", m.renderDetail(listed[i], texts))
	}
	lines = append(lines, ui.Muted.Render(fmt.Sprintf("page %d/%d", meta.Page, meta.TotalPages)))
	return strings.Join(lines, "\n")
}

func (m browseModel) renderRow(view *search.View, language string, selected bool) string {
	name := view.Name(language)
	switch {
	case selected:
		return ui.SelectedRow.Render("> " + name)
	case !view.Visible:
		return ui.Shade.Render("  " + name)
	case view.Record.Type != "":
		return "  " + name + " " + ui.Muted.Render("["+view.Record.Type+"]")
	default:
		return "  " + name
	}
}

func (m browseModel) renderDetail(view *search.View, texts ui.Translator) string {
	attacks := ui.Text(texts, "ATTACKS", "Attacks")
	weaknesses := ui.Text(texts, "WEAKNESSES", "Weaknesses")

	body := lipgloss.JoinVertical(lipgloss.Left,
		ui.LabelValue(ui.IconAttack+" "+attacks, ui.Attributes(texts, attackAttributes(view))),
		ui.LabelValue(ui.IconWeak+" "+weaknesses, ui.Magnitudes(texts, view.Record.Weaknesses)),
	)
	return ui.Panel.Render(body)
}

func (m browseModel) renderSummary() string {
	summary := m.session.Summary()
	texts := m.session.Texts()

	count, err := m.session.CountString()
	if err != nil {
		count = fmt.Sprintf("%d", summary.DistinctNames)
	}

	return ui.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		ui.Gold.Render(count),
		ui.LabelValue(ui.IconAttack, ui.Attributes(texts, summary.TotalAttacks)),
		ui.LabelValue(ui.IconWeak, ui.Magnitudes(texts, summary.AverageWeaks)),
	))
}

func (m browseModel) renderFooter() string {
	keys := "type to filter · esc clear · tab all languages · ctrl+g game · ctrl+l language · ctrl+t type · ctrl+d hide/shade · ctrl+c quit"
	return ui.Muted.Render(keys) + "\n" + m.lastLog
}

func attackAttributes(view *search.View) []attribute.Attribute {
	return slice.Map(view.Record.Attacks, func(attack attribute.Magnitude) attribute.Attribute {
		return attack.Attribute
	})
}
