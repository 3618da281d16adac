// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mhinfo/internal/attribute"
	"github.com/taibuivan/mhinfo/internal/ui"
	"github.com/taibuivan/mhinfo/pkg/slice"
)

// attributeOutput is the JSON form of one catalog attribute.
type attributeOutput struct {
	Token string `json:"token"`
	Key   string `json:"key"`
	Name  string `json:"name"`
}

func newAttributesCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attributes",
		Short: "List the attribute catalog in the selected language",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(contextOf(cmd), flags)
			if err != nil {
				return err
			}
			defer cleanup()

			rows := slice.Map(attribute.All(), func(attr attribute.Attribute) attributeOutput {
				return attributeOutput{
					Token: attr.Token(),
					Key:   attribute.TranslationKey(attr),
					Name:  ui.AttributeName(a.texts, attr),
				}
			})

			out := cmd.OutOrStdout()
			if flags.json {
				return writeJSON(out, rows)
			}

			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Attributes"))
			for _, row := range rows {
				fmt.Fprintf(out, "  %-10s %s\n", row.Token, row.Name)
			}
			return nil
		},
	}

	return cmd
}
