package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/foldwave/sheetcalc/address"
	"github.com/foldwave/sheetcalc/sheet"
	"github.com/foldwave/sheetcalc/wire"
)

func newSetCmd(s *sheet.Sheet) *cobra.Command {
	return &cobra.Command{
		Use:   "set <address> <input>",
		Short: "Assign input to a cell and print every cell it recomputed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := wire.SetFormula(s, args[0], args[1])
			if err != nil {
				return err
			}
			printChanged(cmd, changed)
			return nil
		},
	}
}

func printChanged(cmd *cobra.Command, changed wire.CellMap) {
	addrs := make([]string, 0, len(changed))
	for a := range changed {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool {
		ai, _ := address.ParseCell(addrs[i])
		aj, _ := address.ParseCell(addrs[j])
		return address.Less(ai, aj)
	})

	out := cmd.OutOrStdout()
	for _, a := range addrs {
		w := changed[a]
		style := valueStyle
		if w.Type == wire.TypeError {
			style = errorStyle
		}
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render(a+":"), style.Render(describeWireValue(w)))
	}
}

func describeWireValue(w wire.Value) string {
	switch w.Type {
	case wire.TypeEmpty:
		return ""
	case wire.TypeString:
		return `"` + w.Value + `"`
	default:
		return w.Value
	}
}
