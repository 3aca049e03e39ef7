package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/pipeline"
	"marquee/internal/rawio"
)

// Stage profiles the raw inputs and writes the profile reports.
type Stage struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewStage creates the profiling stage.
func NewStage(cfg *config.Config, logger *slog.Logger) *Stage {
	return &Stage{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "profile"),
	}
}

func (s *Stage) Name() string { return "profile" }

func (s *Stage) Run(ctx context.Context) error {
	tables, err := rawio.LoadAll(s.cfg.RawFiles())
	if err != nil {
		marker := error(nil)
		if errors.Is(err, rawio.ErrMissingFile) {
			marker = pipeline.ErrMissingInput
		}
		return pipeline.Wrap(marker, "profile", "load raw", "load raw tables", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	report := BuildReport(tables)

	docsDir := s.cfg.Paths.DocsDir
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return pipeline.Wrap(nil, "profile", "write", fmt.Sprintf("create directory %q", docsDir), err)
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return pipeline.Wrap(nil, "profile", "write", "encode profile report", err)
	}
	jsonPath := filepath.Join(docsDir, "raw_profile.json")
	if err := os.WriteFile(jsonPath, append(payload, '\n'), 0o644); err != nil {
		return pipeline.Wrap(nil, "profile", "write", "write raw_profile.json", err)
	}
	mdPath := filepath.Join(docsDir, "raw_profile.md")
	if err := os.WriteFile(mdPath, []byte(report.Markdown()), 0o644); err != nil {
		return pipeline.Wrap(nil, "profile", "write", "write raw_profile.md", err)
	}

	s.logger.Info("raw profile written",
		logging.Int("tables", len(report.Files)),
		logging.Int("direct_overlap", report.RatingsKeys.DirectOverlap),
		logging.Int("mapped_matches", report.RatingsKeys.MappedMatches),
	)
	return nil
}
