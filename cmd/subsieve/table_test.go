package main

import (
	"strings"
	"testing"

	"subsieve/internal/batch"
	"subsieve/internal/subtitles"
)

func TestRenderSummaryTable(t *testing.T) {
	rendered := renderSummaryTable(batch.Summary{Processed: 3, Extracted: 5, Failed: 1})
	for _, want := range []string{"Videos", "Subtitles written", "Failures", "3", "5", "1"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("summary table %q missing %q", rendered, want)
		}
	}
}

func TestRenderStreamTable(t *testing.T) {
	rendered := renderStreamTable([]subtitles.StreamInfo{
		{Index: 2, Codec: "subrip", Language: "eng", Title: "Full"},
		{Index: 4, Codec: "ass", Language: "chi"},
	})
	for _, want := range []string{"Index", "Codec", "subrip", "eng", "English", "chi", "Chinese", "Full"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("stream table %q missing %q", rendered, want)
		}
	}
}
