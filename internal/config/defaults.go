package config

const (
	defaultLogDir               = "~/.local/share/subsieve/logs"
	defaultFFmpegBinary         = "ffmpeg"
	defaultFFprobeBinary        = "ffprobe"
	defaultToolTimeoutSeconds   = 0
	defaultSettlePollSeconds    = 2
	defaultSettleTimeoutSeconds = 600
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Tools: Tools{
			FFmpegBinary:   defaultFFmpegBinary,
			FFprobeBinary:  defaultFFprobeBinary,
			TimeoutSeconds: defaultToolTimeoutSeconds,
		},
		Languages: Languages{
			Batch: []string{"rus", "eng", "zho", "chi"},
			Watch: []string{"rus", "eng", "zho"},
		},
		Watch: Watch{
			VideoExtensions:      []string{".mkv", ".mp4", ".avi"},
			SettlePollSeconds:    defaultSettlePollSeconds,
			SettleTimeoutSeconds: defaultSettleTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
