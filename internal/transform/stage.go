package transform

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
	"marquee/internal/tablecsv"
)

// Stage loads the raw layer, normalizes it into the processed tables, and
// writes the quality report.
type Stage struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewStage creates the transform stage.
func NewStage(cfg *config.Config, logger *slog.Logger) *Stage {
	return &Stage{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "transform"),
	}
}

func (s *Stage) Name() string { return "transform" }

// Run executes the transform and persists every processed table.
func (s *Stage) Run(ctx context.Context) error {
	tables, err := rawio.LoadAll(s.cfg.RawFiles())
	if err != nil {
		marker := error(nil)
		if errors.Is(err, rawio.ErrMissingFile) {
			marker = pipeline.ErrMissingInput
		}
		return pipeline.Wrap(marker, "transform", "load raw", "load raw tables", err)
	}
	for name, table := range tables {
		s.logger.Info("raw table loaded",
			logging.String("table", name),
			logging.Int("rows", len(table.Rows)),
			logging.Int("skipped", table.Skipped),
		)
	}

	result, err := Build(tables, Options{
		MaxCastPerMovie: s.cfg.Transform.MaxCastPerMovie,
		DirectorJob:     s.cfg.Transform.DirectorJob,
	})
	if err != nil {
		return err
	}

	dir := s.cfg.Paths.ProcessedDir
	writes := []struct {
		name string
		fn   func() (string, error)
	}{
		{tablecsv.Movies.Name, func() (string, error) { return tablecsv.Write(dir, tablecsv.Movies, result.Movies) }},
		{tablecsv.Persons.Name, func() (string, error) { return tablecsv.Write(dir, tablecsv.Persons, result.Persons) }},
		{tablecsv.Genres.Name, func() (string, error) { return tablecsv.Write(dir, tablecsv.Genres, result.Genres) }},
		{tablecsv.Companies.Name, func() (string, error) { return tablecsv.Write(dir, tablecsv.Companies, result.Companies) }},
		{tablecsv.Keywords.Name, func() (string, error) { return tablecsv.Write(dir, tablecsv.Keywords, result.Keywords) }},
		{tablecsv.GenreBridges.Name, func() (string, error) { return tablecsv.Write(dir, tablecsv.GenreBridges, result.GenreBridges) }},
		{tablecsv.CompanyBridges.Name, func() (string, error) {
			return tablecsv.Write(dir, tablecsv.CompanyBridges, result.CompanyBridges)
		}},
		{tablecsv.KeywordBridges.Name, func() (string, error) {
			return tablecsv.Write(dir, tablecsv.KeywordBridges, result.KeywordBridges)
		}},
		{tablecsv.CastRelations.Name, func() (string, error) { return tablecsv.Write(dir, tablecsv.CastRelations, result.Cast) }},
		{tablecsv.CrewRelations.Name, func() (string, error) { return tablecsv.Write(dir, tablecsv.CrewRelations, result.Crew) }},
		{tablecsv.DirectorRelations.Name, func() (string, error) {
			return tablecsv.Write(dir, tablecsv.DirectorRelations, result.Directors)
		}},
		{tablecsv.RatingFacts.Name, func() (string, error) { return tablecsv.Write(dir, tablecsv.RatingFacts, result.RatingFacts) }},
	}
	for _, write := range writes {
		if err := ctx.Err(); err != nil {
			return err
		}
		path, err := write.fn()
		if err != nil {
			return pipeline.Wrap(nil, "transform", "write processed", "write "+write.name, err)
		}
		s.logger.Debug("processed table written", logging.String("path", path))
	}

	quality := BuildQuality(result)
	if err := writeQuality(s.cfg.Paths.DocsDir, quality); err != nil {
		return pipeline.Wrap(nil, "transform", "write quality", "write quality report", err)
	}

	s.logger.Info("transform complete",
		logging.Int("movies", len(result.Movies)),
		logging.Int("persons", len(result.Persons)),
		logging.Int("rating_facts", len(result.RatingFacts)),
		logging.Int("unmapped_rating_rows", result.Mapping.UnmappedRatingRows),
	)
	return nil
}

func writeQuality(docsDir string, quality Quality) error {
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", docsDir, err)
	}

	payload, err := json.MarshalIndent(quality, "", "  ")
	if err != nil {
		return fmt.Errorf("encode quality report: %w", err)
	}
	jsonPath := filepath.Join(docsDir, "transform_quality.json")
	if err := os.WriteFile(jsonPath, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}

	mdPath := filepath.Join(docsDir, "transform_quality.md")
	if err := os.WriteFile(mdPath, []byte(quality.Markdown()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", mdPath, err)
	}
	return nil
}
