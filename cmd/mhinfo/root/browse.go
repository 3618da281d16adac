// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package root

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/mhinfo/internal/browser"
	"github.com/taibuivan/mhinfo/internal/tui"
)

func newBrowseCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)
			loads := tui.NewLoads()

			a, cleanup, err := openApp(ctx, flags, browser.WithScheduler(loads.Schedule))
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBrowse(ctx, a.session, loads, cmd.OutOrStdout())
		},
	}

	return cmd
}
