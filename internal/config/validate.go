package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateLanguages(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTools() error {
	if c.Tools.FFmpegBinary == "" {
		return errors.New("tools.ffmpeg_binary must be set")
	}
	if c.Tools.FFprobeBinary == "" {
		return errors.New("tools.ffprobe_binary must be set")
	}
	if c.Tools.TimeoutSeconds < 0 {
		return errors.New("tools.timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLanguages() error {
	if len(c.Languages.Batch) == 0 {
		return errors.New("languages.batch must list at least one language code")
	}
	if len(c.Languages.Watch) == 0 {
		return errors.New("languages.watch must list at least one language code")
	}
	return nil
}

func (c *Config) validateWatch() error {
	if len(c.Watch.VideoExtensions) == 0 {
		return errors.New("watch.video_extensions must list at least one extension")
	}
	if c.Watch.SettlePollSeconds <= 0 {
		return errors.New("watch.settle_poll_seconds must be positive")
	}
	if c.Watch.SettleTimeoutSeconds < c.Watch.SettlePollSeconds {
		return errors.New("watch.settle_timeout_seconds must be at least watch.settle_poll_seconds")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
