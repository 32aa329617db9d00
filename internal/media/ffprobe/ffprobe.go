package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Tags      Tags   `json:"tags"`
}

// Tags captures the per-stream metadata tags ffprobe reports. Absent tags
// decode to empty strings.
type Tags struct {
	Language string `json:"language"`
	Title    string `json:"title"`
}

// InspectSubtitles executes ffprobe against the provided path, selecting only
// subtitle streams, and decodes the JSON response.
func InspectSubtitles(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-hide_banner",
		"-select_streams", "s",
		"-show_entries", "stream=index,codec_name,codec_type:stream_tags=language,title",
		"-of", "json",
		"--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// SubtitleStreams returns the streams whose codec type is subtitle. The
// selection flag already restricts the probe, so this is normally the full
// stream list; the filter guards against older ffprobe builds that ignore it.
func (r Result) SubtitleStreams() []Stream {
	streams := make([]Stream, 0, len(r.Streams))
	for _, stream := range r.Streams {
		if stream.CodecType == "" || strings.EqualFold(stream.CodecType, "subtitle") {
			streams = append(streams, stream)
		}
	}
	return streams
}
