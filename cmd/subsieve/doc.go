// Command subsieve extracts embedded subtitle streams from video files,
// selecting streams by language code, either over an explicit file list
// (extract) or by watching a directory for new videos (watch).
package main
