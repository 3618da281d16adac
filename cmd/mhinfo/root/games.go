// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mhinfo/internal/platform/config"
	"github.com/taibuivan/mhinfo/internal/ui"
)

// gamesOutput is the JSON form of the catalog and the current selection.
type gamesOutput struct {
	Games     []config.Game `json:"games"`
	Languages []string      `json:"languages"`
	Game      string        `json:"selected_game"`
	Language  string        `json:"selected_language"`
}

func newGamesCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "List the available games and languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(contextOf(cmd), flags)
			if err != nil {
				return err
			}
			defer cleanup()

			catalog := a.store.Catalog()
			selected := a.store.Game().ID
			out := cmd.OutOrStdout()

			if flags.json {
				return writeJSON(out, gamesOutput{
					Games:     catalog.Games,
					Languages: catalog.Languages,
					Game:      selected,
					Language:  a.store.Language(),
				})
			}

			fmt.Fprintln(out, ui.Heading(ui.IconGame, "Games"))
			for _, game := range catalog.Games {
				marker := "  "
				if game.ID == selected {
					marker = ui.Good.Render("* ")
				}
				fmt.Fprintf(out, "%s%-6s %s\n", marker, game.ID, ui.Muted.Render(game.Title))
			}
			fmt.Fprintln(out, ui.LabelValue("Languages", fmt.Sprintf("%v (selected %s)", catalog.Languages, a.store.Language())))
			return nil
		},
	}

	return cmd
}
