package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subsieve/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of the external media binaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			missing := 0
			for _, status := range deps.CheckBinaries(deps.Requirements(cfg)) {
				kind := statusOK
				message := status.Command
				if !status.Available {
					kind = statusError
					message = status.Detail
					missing++
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}
			if missing > 0 {
				fmt.Fprintf(out, "\n%d required binar%s missing\n", missing, pluralY(missing))
			}
			return nil
		},
	}
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
