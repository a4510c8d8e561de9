// Package logging assembles structured slog loggers and formatting helpers used
// across wiiuid.
//
// It owns the configurable console/JSON handlers and the level and output
// plumbing. Loggers write to stderr by default so diagnostics never mix with
// listings on stdout. Context helpers tag every line of a run with its session
// ID, and NewNop provides a discard logger for tests and wiring code.
package logging
