package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subsieve/internal/config"
	"subsieve/internal/subtitles"
	"subsieve/internal/watcher"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var languagesFlag []string

	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch a directory and extract subtitles from new video files",
		Long: `Watch processes video files already in the directory, then blocks waiting
for new ones. Each recognized video is extracted once its size stops changing.
The watcher runs until interrupted; extraction failures are logged and do not
stop it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			watchDir, err := config.ExpandPath(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("resolve watch directory: %w", err)
			}
			outDir := strings.TrimSpace(outputDir)
			if outDir != "" {
				if outDir, err = config.ExpandPath(outDir); err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
			}
			languages := resolveLanguages(languagesFlag, cfg.Languages.Watch)

			extractor, err := subtitles.NewExtractor(cfg, logger)
			if err != nil {
				return fmt.Errorf("build extractor: %w", err)
			}
			w, err := watcher.New(cfg, watchDir, outDir, languages, extractor, logger)
			if err != nil {
				return err
			}

			if err := w.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for extracted subtitles (default: the watched directory)")
	cmd.Flags().StringSliceVarP(&languagesFlag, "languages", "l", nil, "Wanted language codes (default: languages.watch from config)")
	return cmd
}
