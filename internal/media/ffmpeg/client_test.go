package ffmpeg

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type recordingExecutor struct {
	binary string
	args   []string
	output []byte
	err    error
}

func (r *recordingExecutor) Run(_ context.Context, binary string, args []string) ([]byte, error) {
	r.binary = binary
	r.args = append([]string(nil), args...)
	return r.output, r.err
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := New("", 0); err == nil {
		t.Fatal("expected error for empty binary")
	}
	if _, err := New("ffmpeg", -1); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestExtractStreamBuildsPassthroughCommand(t *testing.T) {
	executor := &recordingExecutor{}
	client, err := New("/usr/bin/ffmpeg", 0, WithExecutor(executor))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if err := client.ExtractStream(context.Background(), "/in/movie.mkv", 3, "/out/movie.eng.srt"); err != nil {
		t.Fatalf("extract: %v", err)
	}
	if executor.binary != "/usr/bin/ffmpeg" {
		t.Fatalf("unexpected binary %q", executor.binary)
	}
	joined := strings.Join(executor.args, " ")
	for _, want := range []string{"-y", "-i /in/movie.mkv", "-map 0:3", "-c:s copy", "/out/movie.eng.srt"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("args %q missing %q", joined, want)
		}
	}
}

func TestExtractStreamSurfacesToolDiagnostic(t *testing.T) {
	executor := &recordingExecutor{
		output: []byte("Subtitle codec 94213 is not supported.\n"),
		err:    errors.New("exit status 1"),
	}
	client, err := New("ffmpeg", 0, WithExecutor(executor))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = client.ExtractStream(context.Background(), "a.mkv", 2, "a.eng.srt")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Subtitle codec 94213 is not supported") {
		t.Fatalf("diagnostic missing from %q", err.Error())
	}
	if !strings.Contains(err.Error(), "stream 2") {
		t.Fatalf("stream index missing from %q", err.Error())
	}
}

func TestExtractStreamValidatesArguments(t *testing.T) {
	client, err := New("ffmpeg", 0, WithExecutor(&recordingExecutor{}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := client.ExtractStream(context.Background(), "", 0, "out.srt"); err == nil {
		t.Fatal("expected error for empty source")
	}
	if err := client.ExtractStream(context.Background(), "a.mkv", -1, "out.srt"); err == nil {
		t.Fatal("expected error for negative index")
	}
	if err := client.ExtractStream(context.Background(), "a.mkv", 0, ""); err == nil {
		t.Fatal("expected error for empty destination")
	}
}
