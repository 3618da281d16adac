// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mhinfo/internal/attribute"
	"github.com/taibuivan/mhinfo/internal/monster"
	"github.com/taibuivan/mhinfo/internal/search"
	"github.com/taibuivan/mhinfo/internal/ui"
	"github.com/taibuivan/mhinfo/pkg/slice"
)

// monsterOutput is the JSON form of one listed monster.
type monsterOutput struct {
	Name       string                  `json:"name"`
	Visible    bool                    `json:"visible"`
	Type       string                  `json:"type,omitempty"`
	Names      []monster.LocalizedName `json:"names"`
	Attacks    []attribute.Magnitude   `json:"attacks"`
	Weaknesses []attribute.Magnitude   `json:"weaknesses"`
}

func newListCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [filter...]",
		Short: "List the monsters of the selected game",
		Long: "List the monsters of the selected game. Arguments form the name filter:\n" +
			"each one is a substring match, '=name' an exact match.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)
			a, cleanup, err := openApp(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.start(ctx, args); err != nil {
				return err
			}

			language := a.store.Language()
			listed := a.session.Listed()

			if flags.json {
				return writeJSON(cmd.OutOrStdout(), slice.Map(listed, func(view *search.View) monsterOutput {
					return monsterOutput{
						Name:       view.Name(language),
						Visible:    view.Visible,
						Type:       view.Record.Type,
						Names:      view.Record.Names,
						Attacks:    view.Record.Attacks,
						Weaknesses: view.Record.Weaknesses,
					}
				}))
			}

			return printList(cmd.OutOrStdout(), a, listed)
		},
	}

	return cmd
}

func printList(out io.Writer, a *app, listed []*search.View) error {
	language := a.store.Language()

	fmt.Fprintln(out, ui.Heading(ui.IconMonster, a.store.Game().Title))
	if len(listed) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("(no monster)"))
		return nil
	}

	attacks := ui.Text(a.texts, "ATTACKS", "Attacks")
	weaknesses := ui.Text(a.texts, "WEAKNESSES", "Weaknesses")

	for _, view := range listed {
		name := ui.H2.Render(view.Name(language))
		if !view.Visible {
			name = ui.Shade.Render(view.Name(language))
		}
		if view.Record.Type != "" {
			name += " " + ui.Muted.Render("["+view.Record.Type+"]")
		}
		fmt.Fprintln(out, name)
		fmt.Fprintln(out, "  "+ui.LabelValue(attacks, ui.Attributes(a.texts, slice.Map(view.Record.Attacks, func(m attribute.Magnitude) attribute.Attribute {
			return m.Attribute
		}))))
		fmt.Fprintln(out, "  "+ui.LabelValue(weaknesses, ui.Magnitudes(a.texts, view.Record.Weaknesses)))
	}
	return nil
}
