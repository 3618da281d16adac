// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mhinfo/internal/stats"
	"github.com/taibuivan/mhinfo/internal/ui"
)

// statsOutput is the JSON form of the summary.
type statsOutput struct {
	Game  string        `json:"game"`
	Count string        `json:"count"`
	Stats stats.Summary `json:"stats"`
}

func newStatsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [filter...]",
		Short: "Summarize attacks and average weaknesses of the matching monsters",
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

			summary := a.session.Summary()
			count, err := a.session.CountString()
			if err != nil {
				count = fmt.Sprintf("%d", summary.DistinctNames)
			}

			out := cmd.OutOrStdout()
			if flags.json {
				return writeJSON(out, statsOutput{Game: a.session.Game(), Count: count, Stats: summary})
			}

			fmt.Fprintln(out, ui.Heading(ui.IconMonster, a.store.Game().Title))
			fmt.Fprintln(out, ui.Gold.Render(count))
			fmt.Fprintln(out, ui.LabelValue(ui.Text(a.texts, "ATTACKS", "Attacks"), ui.Attributes(a.texts, summary.TotalAttacks)))
			fmt.Fprintln(out, ui.LabelValue(ui.Text(a.texts, "WEAKNESSES", "Weaknesses"), ui.Magnitudes(a.texts, summary.AverageWeaks)))
			return nil
		},
	}

	return cmd
}
