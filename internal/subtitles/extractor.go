package subtitles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"subsieve/internal/config"
	"subsieve/internal/language"
	"subsieve/internal/logging"
	"subsieve/internal/media/ffmpeg"
	"subsieve/internal/services"
)

// SubtitleExt is the extension of extracted subtitle files.
const SubtitleExt = ".srt"

// Request names one video to extract subtitles from.
type Request struct {
	// Video is the container file path.
	Video string
	// OutputDir receives the subtitle files. Empty means the video's own
	// directory.
	OutputDir string
	// Languages is the wanted-language list, matched case-insensitively
	// against each stream's tag.
	Languages []string
}

// Result records one attempted stream extraction.
type Result struct {
	Stream     StreamInfo
	OutputPath string
	Err        error
}

// StreamExtractor copies one subtitle stream out of a container.
type StreamExtractor interface {
	ExtractStream(ctx context.Context, source string, streamIndex int, dest string) error
}

// Option configures the extractor.
type Option func(*Extractor)

// WithProber injects a custom prober (primarily for tests).
func WithProber(prober Prober) Option {
	return func(e *Extractor) {
		if prober != nil {
			e.prober = prober
		}
	}
}

// WithTool injects a custom stream extractor (primarily for tests).
func WithTool(tool StreamExtractor) Option {
	return func(e *Extractor) {
		if tool != nil {
			e.tool = tool
		}
	}
}

// Extractor orchestrates probe, language filtering, and per-stream
// extraction for one video at a time.
type Extractor struct {
	prober Prober
	tool   StreamExtractor
	logger *slog.Logger
}

// NewExtractor builds an extractor from configuration.
func NewExtractor(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Extractor, error) {
	if cfg == nil {
		return nil, errors.New("extractor requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	tool, err := ffmpeg.New(cfg.Tools.FFmpegBinary, cfg.Tools.TimeoutSeconds)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg client: %w", err)
	}

	extractor := &Extractor{
		prober: NewFFprobeProber(cfg.Tools.FFprobeBinary, cfg.Tools.TimeoutSeconds),
		tool:   tool,
		logger: logger.With(logging.String("component", "extractor")),
	}
	for _, opt := range opts {
		opt(extractor)
	}
	return extractor, nil
}

// Extract probes the request's video and copies every wanted-language stream
// into its own subtitle file, in probe order. The returned error is non-nil
// only when nothing could be attempted (probe or output directory failure);
// individual stream failures live in their Result and do not stop siblings.
func (e *Extractor) Extract(ctx context.Context, req Request) ([]Result, error) {
	video := strings.TrimSpace(req.Video)
	if video == "" {
		return nil, services.Wrap(services.ErrValidation, "extractor", "extract", "video path required", nil)
	}

	log := e.logger
	if jobID, ok := services.JobIDFromContext(ctx); ok {
		log = log.With(logging.String("job_id", jobID))
	}

	streams, err := e.prober.Probe(ctx, video)
	if err != nil {
		return nil, err
	}

	matched := matchStreams(streams, req.Languages)
	log.Debug("probe complete",
		logging.String("video", video),
		logging.Int("subtitle_streams", len(streams)),
		logging.Int("matched", len(matched)))
	if len(matched) == 0 {
		return nil, nil
	}

	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		outputDir = filepath.Dir(video)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "extractor", "create output dir", outputDir, err)
	}

	results := make([]Result, 0, len(matched))
	for _, stream := range matched {
		outputPath := OutputPath(video, outputDir, stream.Language)
		result := Result{Stream: stream, OutputPath: outputPath}
		if err := e.tool.ExtractStream(ctx, video, stream.Index, outputPath); err != nil {
			result.Err = services.Wrap(services.ErrExternalTool, "extractor", "extract stream", stream.Language, err)
			log.Warn("stream extraction failed",
				logging.String("video", video),
				logging.String("language", stream.Language),
				logging.Int("stream_index", stream.Index),
				logging.Error(err))
		} else {
			log.Info("subtitle extracted",
				logging.String("video", video),
				logging.String("language", stream.Language),
				logging.String("output", outputPath))
		}
		results = append(results, result)
	}
	return results, nil
}

// OutputPath derives the deterministic subtitle path for one (video,
// language) pair: <output_dir>/<video_basename>.<language>.srt. Two streams
// with the same tag map to the same path; the later one wins.
func OutputPath(video, outputDir, lang string) string {
	base := strings.TrimSuffix(filepath.Base(video), filepath.Ext(video))
	return filepath.Join(outputDir, base+"."+language.Normalize(lang)+SubtitleExt)
}

// matchStreams filters streams to those whose language tag is in wanted,
// case-insensitively, preserving probe order. Untagged streams never match.
func matchStreams(streams []StreamInfo, wanted []string) []StreamInfo {
	matched := make([]StreamInfo, 0, len(streams))
	for _, stream := range streams {
		if stream.Language == "" {
			continue
		}
		for _, lang := range wanted {
			if strings.EqualFold(stream.Language, lang) {
				matched = append(matched, stream)
				break
			}
		}
	}
	return matched
}
