package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"subsieve/internal/subtitles"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "probe <video>",
		Short: "List a video's subtitle streams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			prober := subtitles.NewFFprobeProber(cfg.Tools.FFprobeBinary, cfg.Tools.TimeoutSeconds)
			streams, err := prober.Probe(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(streams)
			}

			if len(streams) == 0 {
				fmt.Fprintln(out, "No subtitle streams found")
				return nil
			}

			fmt.Fprintln(out, renderStreamTable(streams))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the stream list as JSON")
	return cmd
}
