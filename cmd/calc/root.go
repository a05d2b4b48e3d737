package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/foldwave/sheetcalc/functions"
	"github.com/foldwave/sheetcalc/sheet"
)

// Version is set via ldflags at release build time.
var Version = "dev"

// newSheet builds the single in-process worksheet the CLI operates on,
// with the example functions package registered (SPEC_FULL.md §C).
func newSheet() *sheet.Sheet {
	s := sheet.New()
	functions.RegisterAll(s)
	return s
}

// Execute runs the calc CLI: get/set one-shot subcommands plus an
// interactive repl, mirroring the Tauri app's get_formula/set_formula
// host commands over a terminal instead of an IPC channel.
func Execute(ctx context.Context) error {
	s := newSheet()

	root := &cobra.Command{
		Use:           "calc",
		Short:         "Spreadsheet evaluation core, from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = Version

	root.AddCommand(newGetCmd(s))
	root.AddCommand(newSetCmd(s))
	root.AddCommand(newReplCmd(s))

	if err := fang.Execute(ctx, root, fang.WithVersion(Version)); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		return err
	}
	return nil
}
