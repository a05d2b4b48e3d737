package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foldwave/sheetcalc/sheet"
	"github.com/foldwave/sheetcalc/wire"
)

func newGetCmd(s *sheet.Sheet) *cobra.Command {
	return &cobra.Command{
		Use:   "get <address>",
		Short: "Print the stored input for a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := wire.GetFormula(s, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render(input))
			return nil
		},
	}
}
