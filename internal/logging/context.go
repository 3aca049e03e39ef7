package logging

import (
	"context"
	"log/slog"
	"strings"
)

type contextKey int

const (
	runIDKey contextKey = iota
	stageKey
)

// WithRunID stores the pipeline run identifier on the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	if strings.TrimSpace(runID) == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, runID)
}

// WithStage stores the active stage name on the context.
func WithStage(ctx context.Context, stage string) context.Context {
	if strings.TrimSpace(stage) == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// WithContext returns a logger enriched with any run/stage identifiers found
// on the context. A nil logger yields a no-op logger.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if ctx == nil {
		return logger
	}
	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		logger = logger.With(String(FieldRunID, runID))
	}
	if stage, ok := ctx.Value(stageKey).(string); ok && stage != "" {
		logger = logger.With(String(FieldStage, stage))
	}
	return logger
}
