// Package logging constructs slog loggers with a human-oriented console
// handler and a machine-oriented JSON handler, writing to stdout plus an
// optional log file.
package logging
