package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"subsieve/internal/config"
	"subsieve/internal/logging"
	"subsieve/internal/services"
	"subsieve/internal/subtitles"
)

// Extraction is the slice of the subtitle extractor the watcher needs.
type Extraction interface {
	Extract(ctx context.Context, req subtitles.Request) ([]subtitles.Result, error)
}

// Option configures the watcher.
type Option func(*Watcher)

// WithSettleIntervals overrides the settle poll and timeout (primarily for
// tests).
func WithSettleIntervals(poll, timeout time.Duration) Option {
	return func(w *Watcher) {
		if poll > 0 {
			w.settlePoll = poll
		}
		if timeout > 0 {
			w.settleTimeout = timeout
		}
	}
}

// WithoutLock disables the single-instance lock (primarily for tests).
func WithoutLock() Option {
	return func(w *Watcher) {
		w.lockPath = ""
	}
}

// Watcher reacts to file creation in one directory.
type Watcher struct {
	dir        string
	outputDir  string
	languages  []string
	extensions map[string]struct{}

	settlePoll    time.Duration
	settleTimeout time.Duration
	lockPath      string

	extractor Extraction
	logger    *slog.Logger

	// Lifetime totals, touched only from the event loop's flow of control.
	processed int
	extracted int
}

// New constructs a watcher for dir. The directory must already exist; an
// empty outputDir means each video's own directory (here: dir itself).
func New(cfg *config.Config, dir, outputDir string, languages []string, extractor Extraction, logger *slog.Logger, opts ...Option) (*Watcher, error) {
	if cfg == nil {
		return nil, errors.New("watcher requires config")
	}
	if extractor == nil {
		return nil, errors.New("watcher requires an extractor")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	dir = strings.TrimSpace(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "watcher", "stat watch dir", dir, err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrConfiguration, "watcher", "stat watch dir", fmt.Sprintf("%s is not a directory", dir), nil)
	}

	extensions := make(map[string]struct{}, len(cfg.Watch.VideoExtensions))
	for _, ext := range cfg.Watch.VideoExtensions {
		extensions[ext] = struct{}{}
	}

	w := &Watcher{
		dir:           dir,
		outputDir:     strings.TrimSpace(outputDir),
		languages:     append([]string(nil), languages...),
		extensions:    extensions,
		settlePoll:    time.Duration(cfg.Watch.SettlePollSeconds) * time.Second,
		settleTimeout: time.Duration(cfg.Watch.SettleTimeoutSeconds) * time.Second,
		lockPath:      cfg.LockFilePath(),
		extractor:     extractor,
		logger:        logger.With(logging.String("component", "watcher")),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run processes existing videos, then blocks handling creation events until
// ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w.lockPath != "" {
		if err := os.MkdirAll(filepath.Dir(w.lockPath), 0o755); err != nil {
			return services.Wrap(services.ErrFilesystem, "watcher", "create lock dir", filepath.Dir(w.lockPath), err)
		}
		lock := flock.New(w.lockPath)
		ok, err := lock.TryLock()
		if err != nil {
			return services.Wrap(services.ErrFilesystem, "watcher", "acquire lock", w.lockPath, err)
		}
		if !ok {
			return services.Wrap(services.ErrConfiguration, "watcher", "acquire lock", "another watcher instance is already running", nil)
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				w.logger.Warn("failed to release watch lock", logging.Error(err))
			}
		}()
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "watcher", "create notifier", "", err)
	}
	defer notifier.Close()

	if err := notifier.Add(w.dir); err != nil {
		return services.Wrap(services.ErrConfiguration, "watcher", "watch directory", w.dir, err)
	}

	w.logger.Info("watching directory", logging.String("dir", w.dir))
	w.scanExisting(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopping",
				logging.Int("videos_processed", w.processed),
				logging.Int("subtitles_extracted", w.extracted))
			return ctx.Err()
		case event, ok := <-notifier.Events:
			if !ok {
				return errors.New("watch event channel closed")
			}
			if event.Op.Has(fsnotify.Create) {
				w.HandleEvent(ctx, event.Name)
			}
		case err, ok := <-notifier.Errors:
			if !ok {
				return errors.New("watch error channel closed")
			}
			w.logger.Warn("watch error", logging.Error(err))
		}
	}
}

// HandleEvent processes one created path: recognized video extensions are
// settled and extracted, everything else is ignored. Errors are logged, never
// returned; the watch loop outlives every failed extraction.
func (w *Watcher) HandleEvent(ctx context.Context, path string) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := w.extensions[ext]; !ok {
		w.logger.Debug("ignoring non-video file", logging.String("path", path))
		return
	}

	jobID := uuid.NewString()
	ctx = services.WithJobID(ctx, jobID)
	log := w.logger.With(logging.String("job_id", jobID), logging.String("video", path))
	log.Info("video file detected")

	if err := w.waitSettled(ctx, path); err != nil {
		log.Warn("file did not settle; skipping", logging.Error(err))
		return
	}

	w.processed++
	results, err := w.extractor.Extract(ctx, subtitles.Request{
		Video:     path,
		OutputDir: w.outputDir,
		Languages: w.languages,
	})
	if err != nil {
		log.Error("extraction failed", logging.Error(err))
		return
	}

	extracted := 0
	for _, result := range results {
		if result.Err != nil {
			log.Error("stream extraction failed",
				logging.String("language", result.Stream.Language),
				logging.Error(result.Err))
			continue
		}
		extracted++
	}
	w.extracted += extracted
	log.Info("extraction complete", logging.Int("extracted", extracted), logging.Int("attempted", len(results)))
}

// scanExisting handles video files already present in the watch directory,
// so a watcher started over a populated directory catches up first.
func (w *Watcher) scanExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.logger.Warn("scan watch directory", logging.Error(err))
		return
	}
	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		if entry.IsDir() {
			continue
		}
		w.HandleEvent(ctx, filepath.Join(w.dir, entry.Name()))
	}
}

// waitSettled blocks until path's size and mtime are unchanged across one
// poll interval, the settle timeout passes, or ctx is cancelled.
func (w *Watcher) waitSettled(ctx context.Context, path string) error {
	deadline := time.Now().Add(w.settleTimeout)
	var (
		lastSize int64 = -1
		lastMod  time.Time
	)
	for {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if lastSize >= 0 && info.Size() == lastSize && info.ModTime().Equal(lastMod) {
			return nil
		}
		lastSize = info.Size()
		lastMod = info.ModTime()

		if time.Now().After(deadline) {
			return fmt.Errorf("file still changing after %s", w.settleTimeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.settlePoll):
		}
	}
}
