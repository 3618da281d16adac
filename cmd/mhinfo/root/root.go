// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package root holds the mhinfo command tree.
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mhinfo/internal/platform/constants"
	"github.com/taibuivan/mhinfo/internal/ui"
)

// globalFlags are shared by every command.
type globalFlags struct {
	json         bool
	query        string
	game         string
	language     string
	allLanguages bool
	types        []string
	shade        bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Monster Hunter monster info browser",
		Long:          "mhinfo lists monsters per game with their attacks and normalized weaknesses, searchable by name in any language.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       constants.AppVersion,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	persistent := rootCmd.PersistentFlags()
	persistent.BoolVar(&flags.json, "json", false, "print JSON instead of styled text")
	persistent.StringVar(&flags.query, "query", "", `bootstrap query, e.g. "lang=FR&game=mhw&filter=rath&fmode=SHADE"`)
	persistent.StringVarP(&flags.game, "game", "g", "", "game id (see 'games')")
	persistent.StringVarP(&flags.language, "lang", "l", "", "display language")
	persistent.BoolVarP(&flags.allLanguages, "all-languages", "a", false, "match names in every language")
	persistent.StringSliceVarP(&flags.types, "type", "t", nil, "only show monsters of these types")
	persistent.BoolVar(&flags.shade, "shade", false, "list non-matching monsters shaded instead of hiding them")

	rootCmd.AddCommand(
		newListCmd(flags),
		newStatsCmd(flags),
		newGamesCmd(flags),
		newAttributesCmd(flags),
		newBrowseCmd(flags),
	)

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
