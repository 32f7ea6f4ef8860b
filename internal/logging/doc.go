// Package logging assembles the structured slog loggers used across subsift.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// provides attribute helpers plus a no-op logger for tests. Log output goes to
// stderr by default; stdout is reserved for the per-file report stream and the
// run summary.
package logging
