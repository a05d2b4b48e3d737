package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foldwave/sheetcalc/sheet"
	"github.com/foldwave/sheetcalc/wire"
)

// newReplCmd starts an interactive loop over stdin accepting "get
// <address>" and "set <address> <input...>" lines against a single
// long-lived sheet, since set/get as separate process invocations cannot
// share state (spec.md's engine keeps no persisted state of its own).
func newReplCmd(s *sheet.Sheet) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive get/set session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, s)
		},
	}
}

func runRepl(cmd *cobra.Command, s *sheet.Sheet) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, labelStyle.Render("calc repl — commands: get <addr>, set <addr> <input>, quit"))
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := handleReplLine(cmd, s, line); err != nil {
			fmt.Fprintln(out, errorStyle.Render(err.Error()))
		}
	}
}

func handleReplLine(cmd *cobra.Command, s *sheet.Sheet, line string) error {
	fields := strings.SplitN(line, " ", 3)
	switch fields[0] {
	case "get":
		if len(fields) != 2 {
			return fmt.Errorf("usage: get <address>")
		}
		input, err := wire.GetFormula(s, fields[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render(input))
		return nil
	case "set":
		if len(fields) != 3 {
			return fmt.Errorf("usage: set <address> <input>")
		}
		changed, err := wire.SetFormula(s, fields[1], fields[2])
		if err != nil {
			return err
		}
		printChanged(cmd, changed)
		return nil
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}
