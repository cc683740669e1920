// Package logging assembles the structured slog loggers and console output
// helpers used across powertools.
//
// It owns the console/JSON handler construction and level plumbing, and
// exposes a no-op logger for tests and call sites where logging is optional.
// Prefer these constructors over hand-rolled slog setup so every command
// emits lines with the same shape.
package logging
