// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taibuivan/mhinfo/internal/browser"
)

// Loads queues dataset loads until the model turns them into commands.
// Pass [Loads.Schedule] to [browser.WithScheduler].
type Loads struct {
	pending []browser.Load
}

// NewLoads returns an empty queue.
func NewLoads() *Loads {
	return &Loads{}
}

// Schedule implements [browser.Scheduler].
func (loads *Loads) Schedule(load browser.Load) {
	loads.pending = append(loads.pending, load)
}

func (loads *Loads) drain() []browser.Load {
	pending := loads.pending
	loads.pending = nil
	return pending
}

// RunBrowse opens the interactive browser on session until the user quits.
func RunBrowse(ctx context.Context, session *browser.Session, loads *Loads, out io.Writer) error {
	m := newBrowseModel(ctx, session, loads)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
