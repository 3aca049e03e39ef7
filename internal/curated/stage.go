package curated

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/pipeline"
	"marquee/internal/tablecsv"
)

// Stage builds the curated layer from the processed tables.
type Stage struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewStage creates the curated stage.
func NewStage(cfg *config.Config, logger *slog.Logger) *Stage {
	return &Stage{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "curated"),
	}
}

func (s *Stage) Name() string { return "curated" }

func (s *Stage) Run(ctx context.Context) error {
	tables, err := loadTables(s.cfg.Paths.ProcessedDir)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrMissingInput, "curated", "load processed", "load processed tables", err)
	}

	opts := Options{
		MinRatingCount:    s.cfg.Transform.MinRatingCount,
		TopCompanies:      s.cfg.Curated.TopCompanies,
		TopKeywords:       s.cfg.Curated.TopKeywords,
		CoActorMinRatings: s.cfg.Curated.CoActorMinRatings,
		CoActorMaxOrder:   s.cfg.Curated.CoActorMaxOrder,
		CoActorTopPairs:   s.cfg.Curated.CoActorTopPairs,
	}

	overviews := BuildOverview(tables, opts)
	stats := BuildGenreStats(tables, opts)
	trends := BuildYearTrends(tables, opts)
	pairs := BuildCoActorPairs(tables, opts)

	if err := ctx.Err(); err != nil {
		return err
	}

	dir := s.cfg.Paths.CuratedDir
	if _, err := tablecsv.Write(dir, tablecsv.Overviews, overviews); err != nil {
		return pipeline.Wrap(nil, "curated", "write", "write movie overview", err)
	}
	if _, err := tablecsv.Write(dir, tablecsv.GenreStats, stats); err != nil {
		return pipeline.Wrap(nil, "curated", "write", "write genre stats", err)
	}
	if _, err := tablecsv.Write(dir, tablecsv.YearTrends, trends); err != nil {
		return pipeline.Wrap(nil, "curated", "write", "write year trends", err)
	}
	if _, err := tablecsv.Write(dir, tablecsv.CoActorPairs, pairs); err != nil {
		return pipeline.Wrap(nil, "curated", "write", "write co-actor pairs", err)
	}

	s.logger.Info("curated layer built",
		logging.Int("overview_rows", len(overviews)),
		logging.Int("genres", len(stats)),
		logging.Int("years", len(trends)),
		logging.Int("coactor_pairs", len(pairs)),
	)
	return nil
}

func loadTables(processedDir string) (Tables, error) {
	var tables Tables
	var err error
	if tables.Movies, err = tablecsv.Read(processedDir, tablecsv.Movies); err != nil {
		return tables, err
	}
	if tables.GenreBridges, err = tablecsv.Read(processedDir, tablecsv.GenreBridges); err != nil {
		return tables, err
	}
	if tables.CompanyBridges, err = tablecsv.Read(processedDir, tablecsv.CompanyBridges); err != nil {
		return tables, err
	}
	if tables.KeywordBridges, err = tablecsv.Read(processedDir, tablecsv.KeywordBridges); err != nil {
		return tables, err
	}
	if tables.Cast, err = tablecsv.Read(processedDir, tablecsv.CastRelations); err != nil {
		return tables, err
	}
	if tables.RatingFacts, err = tablecsv.Read(processedDir, tablecsv.RatingFacts); err != nil {
		return tables, err
	}
	return tables, nil
}

// WriteInsights writes the insights document as pretty-printed JSON.
func WriteInsights(dir string, insights Insights) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	payload, err := json.MarshalIndent(insights, "", "  ")
	if err != nil {
		return fmt.Errorf("encode insights: %w", err)
	}
	path := filepath.Join(dir, "insights.json")
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
