package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerRendersComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelInfo)

	logger := slog.New(newConsoleHandler(&buf, lvl))
	logger = NewComponentLogger(logger, "transform")
	logger.Info("stage completed", Int("rows", 42), String("table", "dim_movie"))

	line := buf.String()
	if !strings.Contains(line, "INFO transform: stage completed") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "rows=42") || !strings.Contains(line, "table=dim_movie") {
		t.Fatalf("missing attrs in line: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl))
	logger.Info("msg", String("title", "Toy Story"))

	if !strings.Contains(buf.String(), `title="Toy Story"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestWithContextAttachesRunAndStage(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	ctx := WithRunID(context.Background(), "run-1")
	ctx = WithStage(ctx, "curated")
	WithContext(ctx, logger).Info("hello")

	line := buf.String()
	if !strings.Contains(line, "run_id=run-1") || !strings.Contains(line, "stage=curated") {
		t.Fatalf("missing context attrs: %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("nonsense"); got != slog.LevelInfo {
		t.Fatalf("unexpected level: %v", got)
	}
	if got := parseLevel("debug"); got != slog.LevelDebug {
		t.Fatalf("unexpected level: %v", got)
	}
}
