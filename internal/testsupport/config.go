package testsupport

import (
	"log/slog"
	"path/filepath"
	"testing"

	"subsieve/internal/config"
	"subsieve/internal/logging"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp log directory per
// test. It starts from repository defaults and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithLanguages overrides both per-mode default language lists.
func WithLanguages(langs ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Languages.Batch = append([]string(nil), langs...)
		cfg.Languages.Watch = append([]string(nil), langs...)
	}
}

// WithSettle overrides the watch settle intervals.
func WithSettle(pollSeconds, timeoutSeconds int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Watch.SettlePollSeconds = pollSeconds
		cfg.Watch.SettleTimeoutSeconds = timeoutSeconds
	}
}

// NewLogger returns a logger that discards all output.
func NewLogger() *slog.Logger {
	return logging.NewNop()
}
