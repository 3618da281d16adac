// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ui holds the terminal theme shared by the CLI and the TUI.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taibuivan/mhinfo/internal/attribute"
)

const (
	IconMonster = "🐉"
	IconAttack  = "⚔️"
	IconWeak    = "🎯"
	IconGame    = "🎮"
	IconSearch  = "🔎"
	IconInfo    = "ℹ️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cFaint   = lipgloss.Color("238") // dark gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Shade = lipgloss.NewStyle().Foreground(cFaint)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

// Translator resolves localization keys. [*localization.Store] implements it.
type Translator interface {
	Translate(key string) (string, error)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Text translates key, falling back to fallback while the table is loading.
func Text(translator Translator, key string, fallback string) string {
	if translator == nil {
		return fallback
	}
	text, err := translator.Translate(key)
	if err != nil {
		return fallback
	}
	return text
}

// AttributeName is the localized name of a.
func AttributeName(translator Translator, a attribute.Attribute) string {
	return Text(translator, attribute.TranslationKey(a), a.String())
}

// MagnitudeStyle colors a weakness value by strength.
func MagnitudeStyle(value int) lipgloss.Style {
	switch {
	case value >= 100:
		return Gold
	case value >= 50:
		return Good
	case value >= 0:
		return Muted
	default:
		return Shade
	}
}

// Magnitudes renders "Name value" pairs. Entries whose value is not
// displayable (negative) show the name only.
func Magnitudes(translator Translator, magnitudes []attribute.Magnitude) string {
	if len(magnitudes) == 0 {
		return Muted.Render("-")
	}
	parts := make([]string, 0, len(magnitudes))
	for _, m := range magnitudes {
		name := AttributeName(translator, m.Attribute)
		value := attribute.DisplayValue(m)
		if value == "" {
			parts = append(parts, Shade.Render(name))
			continue
		}
		parts = append(parts, name+" "+MagnitudeStyle(m.Value).Render(value))
	}
	return strings.Join(parts, Muted.Render(" · "))
}

// Attributes renders a list of attribute names.
func Attributes(translator Translator, attributes []attribute.Attribute) string {
	if len(attributes) == 0 {
		return Muted.Render("-")
	}
	names := make([]string, 0, len(attributes))
	for _, a := range attributes {
		names = append(names, AttributeName(translator, a))
	}
	return strings.Join(names, Muted.Render(" · "))
}

// Toggle renders a boolean switch.
func Toggle(on bool) string {
	if on {
		return Good.Render("on")
	}
	return Muted.Render("off")
}
