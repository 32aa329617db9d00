// Package config loads and validates subsieve configuration.
//
// Configuration is TOML with repository defaults applied first, then values
// from the resolved config file, then normalization (path expansion, token
// lowercasing) and validation. A missing config file is not an error; the
// defaults describe a working installation wherever ffmpeg and ffprobe are on
// PATH.
//
// Resolution order: explicit --config flag, ~/.config/subsieve/config.toml,
// ./subsieve.toml.
package config
