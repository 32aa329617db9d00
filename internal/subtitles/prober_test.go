package subtitles_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"subsieve/internal/services"
	"subsieve/internal/subtitles"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "ffprobe")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestFFprobeProberParsesStreams(t *testing.T) {
	stub := writeStub(t, `#!/bin/sh
cat <<'EOF'
{"streams": [
  {"index": 2, "codec_name": "subrip", "codec_type": "subtitle", "tags": {"language": "eng"}},
  {"index": 4, "codec_name": "ass", "codec_type": "subtitle", "tags": {"title": "Signs"}}
]}
EOF
`)

	prober := subtitles.NewFFprobeProber(stub, 0)
	streams, err := prober.Probe(context.Background(), "/library/movie.mkv")
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if len(streams) != 2 {
		t.Fatalf("expected 2 streams, got %d", len(streams))
	}
	if streams[0].Index != 2 || streams[0].Language != "eng" || streams[0].Codec != "subrip" {
		t.Fatalf("unexpected first stream %+v", streams[0])
	}
	if streams[1].Language != "" || streams[1].Title != "Signs" {
		t.Fatalf("unexpected second stream %+v", streams[1])
	}
}

func TestFFprobeProberEmptyStreamList(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho '{\"streams\": []}'\n")

	prober := subtitles.NewFFprobeProber(stub, 0)
	streams, err := prober.Probe(context.Background(), "/library/movie.mkv")
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if len(streams) != 0 {
		t.Fatalf("expected no streams, got %+v", streams)
	}
}

func TestFFprobeProberWrapsToolFailure(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho 'broken.mkv: Invalid data found when processing input' >&2\nexit 1\n")

	prober := subtitles.NewFFprobeProber(stub, 0)
	_, err := prober.Probe(context.Background(), "/library/broken.mkv")
	if !errors.Is(err, services.ErrProbe) {
		t.Fatalf("expected probe marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid data found") {
		t.Fatalf("tool diagnostic missing from %q", err.Error())
	}
}
