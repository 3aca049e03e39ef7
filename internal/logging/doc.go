// Package logging assembles the structured slog loggers used across the
// marquee pipeline.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so stage code can automatically tag
// log lines with run IDs and stage names. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits log lines with the same shape.
package logging
