// Package services defines shared utilities consumed by the batch runner,
// the directory watcher, and the external tool integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper so failures classify
//     consistently (probe vs extraction tool vs filesystem) at the points
//     where processing continues past them.
//   - Context helpers that stamp job and video identifiers for logging.
package services
