// Package logging assembles structured slog loggers and formatting helpers used
// across romfilter.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so every line of a run carries its run
// identifier. Diagnostics go to stderr by default: stdout is reserved for the
// report and the interactive prompt. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
package logging
