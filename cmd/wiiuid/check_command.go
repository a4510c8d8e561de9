package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wiiuid/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [uid.sys]",
		Short: "Verify the record file, title database, catalog and log paths",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var recordPath string
			if len(args) == 1 {
				recordPath = args[0]
			}

			results := preflight.RunAll(ctx.sessionContext(cmd), cfg, recordPath)
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range checkLines(results, colorize) {
				fmt.Fprintln(out, line)
			}
			if preflight.Failed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}
}

func checkLines(results []preflight.Result, colorize bool) []string {
	lines := renderSectionHeader("Preflight", colorize)
	if len(results) == 0 {
		return append(lines, renderStatusLine("Checks", statusInfo, "nothing to check", colorize))
	}
	for _, r := range results {
		kind := statusOK
		switch {
		case r.Passed:
		case r.Optional:
			kind = statusWarn
		default:
			kind = statusError
		}
		lines = append(lines, renderStatusLine(r.Name, kind, r.Detail, colorize))
	}
	return lines
}
