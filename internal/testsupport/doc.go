// Package testsupport provides shared helpers for package tests: configs
// backed by per-test temp directories, silent loggers, and file fixtures.
package testsupport
