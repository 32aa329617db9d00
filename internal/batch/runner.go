package batch

import (
	"context"
	"log/slog"

	"subsieve/internal/logging"
	"subsieve/internal/subtitles"
)

// Extraction is the slice of the subtitle extractor the runner needs.
type Extraction interface {
	Extract(ctx context.Context, req subtitles.Request) ([]subtitles.Result, error)
}

// Summary aggregates the outcome of one batch run.
type Summary struct {
	// Processed counts videos attempted.
	Processed int
	// Extracted counts subtitle files written.
	Extracted int
	// Failed counts videos that failed outright plus streams that failed
	// individually.
	Failed int
}

// Runner processes video files one at a time.
type Runner struct {
	extractor Extraction
	logger    *slog.Logger
}

// NewRunner constructs a batch runner.
func NewRunner(extractor Extraction, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		extractor: extractor,
		logger:    logger.With(logging.String("component", "batch")),
	}
}

// Run extracts subtitles from each video in order. An empty outputDir means
// each video's own directory. Every outcome is logged; the summary is the
// only aggregate, and it never influences process exit status.
func (r *Runner) Run(ctx context.Context, videos []string, outputDir string, languages []string) Summary {
	var summary Summary
	for _, video := range videos {
		if ctx.Err() != nil {
			r.logger.Warn("batch interrupted", logging.Int("remaining", len(videos)-summary.Processed))
			return summary
		}

		summary.Processed++
		r.logger.Info("processing video", logging.String("video", video))

		results, err := r.extractor.Extract(ctx, subtitles.Request{
			Video:     video,
			OutputDir: outputDir,
			Languages: languages,
		})
		if err != nil {
			summary.Failed++
			r.logger.Error("extraction failed", logging.String("video", video), logging.Error(err))
			continue
		}
		if len(results) == 0 {
			r.logger.Info("no matching subtitle streams", logging.String("video", video))
			continue
		}
		for _, result := range results {
			if result.Err != nil {
				summary.Failed++
				r.logger.Error("stream extraction failed",
					logging.String("video", video),
					logging.String("language", result.Stream.Language),
					logging.Error(result.Err))
				continue
			}
			summary.Extracted++
		}
	}

	r.logger.Info("batch complete",
		logging.Int("processed", summary.Processed),
		logging.Int("extracted", summary.Extracted),
		logging.Int("failed", summary.Failed))
	return summary
}
