// Package batch runs subtitle extraction over an explicit list of video
// files, sequentially and in input order. Per-file failures are logged and
// counted, never aborting the rest of the batch.
package batch
