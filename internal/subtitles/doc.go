// Package subtitles implements the extraction core: probe a container's
// subtitle streams, filter them by wanted language codes, and copy each match
// into a standalone .srt file next to (or in a directory configured for) the
// source video.
//
// Key types:
//   - StreamInfo: one probed subtitle stream (index, language tag, codec)
//   - Request: one video with its output directory and wanted languages
//   - Result: one attempted stream with its output path and outcome
//   - Extractor: the probe-filter-extract orchestrator
//
// Failure isolation follows the request shape: a probe failure fails the
// whole request, a single stream's extraction failure only fails that
// stream's Result.
package subtitles
