package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) ([]byte, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	return cmd.CombinedOutput()
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(executor Executor) Option {
	return func(c *Client) {
		if executor != nil {
			c.exec = executor
		}
	}
}

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
	exec    Executor
}

// New constructs an ffmpeg client. A timeout of zero leaves invocations
// unbounded.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	if timeoutSeconds < 0 {
		return nil, errors.New("ffmpeg timeout must not be negative")
	}
	client := &Client{
		binary:  binary,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ExtractStream copies the subtitle stream at streamIndex out of source into
// dest, overwriting dest if it exists. The stream data passes through
// unmodified; ffmpeg rejects codecs that cannot be stored in the destination
// format and that diagnostic is surfaced in the returned error.
func (c *Client) ExtractStream(ctx context.Context, source string, streamIndex int, dest string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return errors.New("source path required")
	}
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return errors.New("destination path required")
	}
	if streamIndex < 0 {
		return fmt.Errorf("invalid stream index %d", streamIndex)
	}

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{
		"-v", "error",
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", source,
		"-map", fmt.Sprintf("0:%d", streamIndex),
		"-c:s", "copy",
		dest,
	}
	output, err := c.exec.Run(runCtx, c.binary, args)
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail == "" {
			return fmt.Errorf("ffmpeg extract stream %d: %w", streamIndex, err)
		}
		return fmt.Errorf("ffmpeg extract stream %d: %w: %s", streamIndex, err, detail)
	}
	return nil
}
