package curated

import (
	"context"
	"log/slog"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/pipeline"
	"marquee/internal/tablecsv"
)

// InsightsStage derives insights.json from the curated tables on disk. It
// runs after the curated stage but can also be re-run on its own.
type InsightsStage struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewInsightsStage creates the insights stage.
func NewInsightsStage(cfg *config.Config, logger *slog.Logger) *InsightsStage {
	return &InsightsStage{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "insights"),
	}
}

func (s *InsightsStage) Name() string { return "insights" }

func (s *InsightsStage) Run(ctx context.Context) error {
	dir := s.cfg.Paths.CuratedDir

	overviews, err := tablecsv.Read(dir, tablecsv.Overviews)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrMissingInput, "insights", "load curated", "load movie overview", err)
	}
	trends, err := tablecsv.Read(dir, tablecsv.YearTrends)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrMissingInput, "insights", "load curated", "load year trends", err)
	}
	stats, err := tablecsv.Read(dir, tablecsv.GenreStats)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrMissingInput, "insights", "load curated", "load genre stats", err)
	}
	pairs, err := tablecsv.Read(dir, tablecsv.CoActorPairs)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrMissingInput, "insights", "load curated", "load co-actor pairs", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	insights := BuildInsights(overviews, trends, stats, pairs)
	if err := WriteInsights(dir, insights); err != nil {
		return pipeline.Wrap(nil, "insights", "write", "write insights", err)
	}

	s.logger.Info("insights written",
		logging.Int("movies", insights.Overview.KPIs.MoviesTotal),
		logging.Int("coactor_pairs", insights.Collab.KPIs.CoActorPairs),
	)
	return nil
}
