package sqliteout

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/pipeline"
)

// Stage rebuilds the SQLite database from the CSV layers.
type Stage struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewStage creates the SQLite build stage.
func NewStage(cfg *config.Config, logger *slog.Logger) *Stage {
	return &Stage{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "sqlite"),
	}
}

func (s *Stage) Name() string { return "sqlite" }

func (s *Stage) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := BuildDatabase(s.cfg.Paths.ProcessedDir, s.cfg.Paths.CuratedDir, s.cfg.Paths.SQLDir)
	if err != nil {
		return pipeline.Wrap(nil, "sqlite", "build", "build database", err)
	}

	if err := os.MkdirAll(s.cfg.Paths.DocsDir, 0o755); err != nil {
		return pipeline.Wrap(nil, "sqlite", "write", "create docs directory", err)
	}
	summaryPath := filepath.Join(s.cfg.Paths.DocsDir, "sqlite_export_summary.md")
	if err := os.WriteFile(summaryPath, []byte(result.Summary()), 0o644); err != nil {
		return pipeline.Wrap(nil, "sqlite", "write", "write export summary", err)
	}

	for _, warning := range result.Warnings {
		s.logger.Warn("coverage gap", logging.String("detail", warning))
	}
	s.logger.Info("sqlite database built",
		logging.String("path", result.DBPath),
		logging.Int("tables", len(result.RowCounts)),
		logging.Int("indexes", len(result.Indexes)),
	)
	return nil
}
