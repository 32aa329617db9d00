package watcher_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"subsieve/internal/subtitles"
	"subsieve/internal/testsupport"
	"subsieve/internal/watcher"
)

type collectingExtractor struct {
	mu       sync.Mutex
	requests []subtitles.Request
	notify   chan string
}

func newCollectingExtractor() *collectingExtractor {
	return &collectingExtractor{notify: make(chan string, 16)}
}

func (c *collectingExtractor) Extract(_ context.Context, req subtitles.Request) ([]subtitles.Result, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()
	select {
	case c.notify <- req.Video:
	default:
	}
	result := subtitles.Result{
		Stream:     subtitles.StreamInfo{Index: 2, Language: "eng"},
		OutputPath: subtitles.OutputPath(req.Video, filepath.Dir(req.Video), "eng"),
	}
	return []subtitles.Result{result}, nil
}

func (c *collectingExtractor) videos() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	videos := make([]string, 0, len(c.requests))
	for _, req := range c.requests {
		videos = append(videos, req.Video)
	}
	return videos
}

func newTestWatcher(t *testing.T, dir string, extractor watcher.Extraction) *watcher.Watcher {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	w, err := watcher.New(cfg, dir, "", []string{"eng"}, extractor, testsupport.NewLogger(),
		watcher.WithSettleIntervals(10*time.Millisecond, time.Second),
		watcher.WithoutLock())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	return w
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_, err := watcher.New(cfg, filepath.Join(t.TempDir(), "absent"), "", []string{"eng"}, newCollectingExtractor(), testsupport.NewLogger())
	if err == nil {
		t.Fatal("expected error for missing watch directory")
	}
}

func TestNewRejectsFileAsDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	file := filepath.Join(t.TempDir(), "file")
	testsupport.WriteFile(t, file, []byte("x"))
	_, err := watcher.New(cfg, file, "", []string{"eng"}, newCollectingExtractor(), testsupport.NewLogger())
	if err == nil {
		t.Fatal("expected error for non-directory watch target")
	}
}

func TestHandleEventFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	movie := filepath.Join(dir, "movie.mp4")
	notes := filepath.Join(dir, "notes.txt")
	testsupport.WriteFile(t, movie, []byte("video"))
	testsupport.WriteFile(t, notes, []byte("text"))

	extractor := newCollectingExtractor()
	w := newTestWatcher(t, dir, extractor)

	w.HandleEvent(context.Background(), movie)
	w.HandleEvent(context.Background(), notes)

	videos := extractor.videos()
	if len(videos) != 1 || videos[0] != movie {
		t.Fatalf("expected only %s to trigger extraction, got %v", movie, videos)
	}
}

func TestHandleEventExtensionMatchIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	movie := filepath.Join(dir, "MOVIE.MKV")
	testsupport.WriteFile(t, movie, []byte("video"))

	extractor := newCollectingExtractor()
	w := newTestWatcher(t, dir, extractor)
	w.HandleEvent(context.Background(), movie)

	if len(extractor.videos()) != 1 {
		t.Fatalf("uppercase extension must match, got %v", extractor.videos())
	}
}

func TestHandleEventSkipsVanishedFile(t *testing.T) {
	dir := t.TempDir()
	extractor := newCollectingExtractor()
	w := newTestWatcher(t, dir, extractor)

	w.HandleEvent(context.Background(), filepath.Join(dir, "ghost.mkv"))

	if len(extractor.videos()) != 0 {
		t.Fatalf("vanished file must be skipped, got %v", extractor.videos())
	}
}

func TestHandleEventWaitsForGrowingFile(t *testing.T) {
	dir := t.TempDir()
	movie := filepath.Join(dir, "movie.mkv")
	testsupport.WriteFile(t, movie, []byte("partial"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Keep appending for a few poll intervals, then stop.
		for i := 0; i < 3; i++ {
			time.Sleep(15 * time.Millisecond)
			f, err := os.OpenFile(movie, os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return
			}
			_, _ = f.WriteString("more")
			_ = f.Close()
		}
	}()

	extractor := newCollectingExtractor()
	w := newTestWatcher(t, dir, extractor)
	w.HandleEvent(context.Background(), movie)
	<-done

	if len(extractor.videos()) != 1 {
		t.Fatalf("settled file must be extracted, got %v", extractor.videos())
	}
}

func TestRunProcessesExistingAndNewFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.mkv")
	testsupport.WriteFile(t, existing, []byte("video"))

	extractor := newCollectingExtractor()
	w := newTestWatcher(t, dir, extractor)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	waitForVideo(t, extractor, existing)

	created := filepath.Join(dir, "created.mp4")
	testsupport.WriteFile(t, created, []byte("video"))
	waitForVideo(t, extractor, created)

	cancel()
	select {
	case err := <-runErr:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}

func TestRunLogsShutdownSummary(t *testing.T) {
	dir := t.TempDir()
	movie := filepath.Join(dir, "movie.mkv")
	testsupport.WriteFile(t, movie, []byte("video"))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	extractor := newCollectingExtractor()
	cfg := testsupport.NewConfig(t)
	w, err := watcher.New(cfg, dir, "", []string{"eng"}, extractor, logger,
		watcher.WithSettleIntervals(10*time.Millisecond, time.Second),
		watcher.WithoutLock())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	waitForVideo(t, extractor, movie)
	cancel()
	select {
	case <-runErr:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}

	out := buf.String()
	if !strings.Contains(out, "watcher stopping") {
		t.Fatalf("missing shutdown record:\n%s", out)
	}
	if !strings.Contains(out, "videos_processed=1") || !strings.Contains(out, "subtitles_extracted=1") {
		t.Fatalf("shutdown record must carry lifetime totals:\n%s", out)
	}
}

func waitForVideo(t *testing.T, extractor *collectingExtractor, want string) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case got := <-extractor.notify:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for extraction of %s; saw %v", want, extractor.videos())
		}
	}
}
