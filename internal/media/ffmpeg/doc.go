// Package ffmpeg wraps the ffmpeg CLI for single-stream subtitle extraction.
//
// The Client copies one subtitle stream, unmodified, out of a container into
// a standalone file. Command execution sits behind the Executor interface so
// tests can run without the binary.
package ffmpeg
