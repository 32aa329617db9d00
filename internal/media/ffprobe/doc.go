// Package ffprobe provides a typed wrapper around ffprobe JSON output for
// subtitle stream inspection.
//
// Primary entry point:
//   - InspectSubtitles: executes ffprobe against one container and returns
//     the subtitle streams with their index, codec, and language tag.
package ffprobe
