package subtitles

import (
	"context"
	"time"

	"subsieve/internal/media/ffprobe"
	"subsieve/internal/services"
)

// StreamInfo describes one subtitle stream inside a container.
type StreamInfo struct {
	// Index is the stream's position in the container, as ffprobe reports it.
	Index int
	// Language is the stream's language tag, or "" when untagged. Treated as
	// an opaque token; never validated against an ISO registry.
	Language string
	// Codec is the subtitle codec name (subrip, ass, hdmv_pgs_subtitle, ...).
	Codec string
	// Title is the optional human-readable stream title.
	Title string
}

// Prober lists the subtitle streams of a video file.
type Prober interface {
	Probe(ctx context.Context, video string) ([]StreamInfo, error)
}

// FFprobeProber probes containers by shelling out to ffprobe.
type FFprobeProber struct {
	binary  string
	timeout time.Duration
}

// NewFFprobeProber constructs a prober around the given ffprobe binary. A
// timeout of zero leaves invocations unbounded.
func NewFFprobeProber(binary string, timeoutSeconds int) *FFprobeProber {
	return &FFprobeProber{
		binary:  binary,
		timeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

// Probe returns the subtitle streams of video in container order. The probe
// is read-only; failures carry the tool's diagnostic and are not retried.
func (p *FFprobeProber) Probe(ctx context.Context, video string) ([]StreamInfo, error) {
	probeCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	result, err := ffprobe.InspectSubtitles(probeCtx, p.binary, video)
	if err != nil {
		return nil, services.Wrap(services.ErrProbe, "prober", "inspect", video, err)
	}

	streams := result.SubtitleStreams()
	infos := make([]StreamInfo, 0, len(streams))
	for _, stream := range streams {
		infos = append(infos, StreamInfo{
			Index:    stream.Index,
			Language: stream.Tags.Language,
			Codec:    stream.CodecName,
			Title:    stream.Tags.Title,
		})
	}
	return infos, nil
}
