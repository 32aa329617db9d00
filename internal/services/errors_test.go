package services_test

import (
	"errors"
	"strings"
	"testing"

	"subsieve/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("ffprobe exited with status 1")
	err := services.Wrap(services.ErrProbe, "prober", "inspect", "/videos/movie.mkv", base)
	if !errors.Is(err, services.ErrProbe) {
		t.Fatalf("expected probe marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	for _, want := range []string{"prober", "inspect", "/videos/movie.mkv", "status 1"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrFilesystem, "extractor", "create output dir", "/subs", nil)
	if !errors.Is(err, services.ErrFilesystem) {
		t.Fatalf("expected filesystem marker, got %v", err)
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", errors.New("boom"))
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool default, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}

func TestFatalClassification(t *testing.T) {
	if services.Fatal(services.Wrap(services.ErrProbe, "p", "", "", nil)) {
		t.Fatal("probe errors must not be fatal")
	}
	if services.Fatal(services.Wrap(services.ErrExternalTool, "e", "", "", nil)) {
		t.Fatal("tool errors must not be fatal")
	}
	if !services.Fatal(services.Wrap(services.ErrConfiguration, "c", "", "", nil)) {
		t.Fatal("configuration errors must be fatal")
	}
}
