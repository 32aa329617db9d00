// Package watcher monitors a directory for new video files and runs subtitle
// extraction for each one, synchronously, in event-arrival order.
//
// Creation events pass an extension filter, then a settle wait (size and
// mtime stable across one poll interval) so files still being copied in are
// not probed mid-write. Videos already present when the watch starts are
// processed first. A flock-backed lock file keeps a second watcher off the
// same configuration.
package watcher
