package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subsieve/internal/batch"
	"subsieve/internal/config"
	"subsieve/internal/subtitles"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var languagesFlag []string

	cmd := &cobra.Command{
		Use:   "extract <video>...",
		Short: "Extract subtitle streams from the given video files",
		Long: `Extract probes each video for subtitle streams, keeps the ones whose
language tag is in the wanted list, and copies each match into
<output-dir>/<video>.<lang>.srt. Without --output-dir, subtitles land next to
their video. Per-file and per-stream failures are logged and do not affect the
exit status.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			outDir := strings.TrimSpace(outputDir)
			if outDir != "" {
				if outDir, err = config.ExpandPath(outDir); err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
			}
			languages := resolveLanguages(languagesFlag, cfg.Languages.Batch)

			extractor, err := subtitles.NewExtractor(cfg, logger)
			if err != nil {
				return fmt.Errorf("build extractor: %w", err)
			}
			runner := batch.NewRunner(extractor, logger)
			summary := runner.Run(cmd.Context(), args, outDir, languages)

			fmt.Fprintln(cmd.OutOrStdout(), renderSummaryTable(summary))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for extracted subtitles (default: each video's directory)")
	cmd.Flags().StringSliceVarP(&languagesFlag, "languages", "l", nil, "Wanted language codes (default: languages.batch from config)")
	return cmd
}
