package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/curated"
	"marquee/internal/graphexport"
	"marquee/internal/pipeline"
	"marquee/internal/profile"
	"marquee/internal/sqliteout"
	"marquee/internal/transform"
)

type stageSpec struct {
	use   string
	short string
	build func(cfg *config.Config, logger *slog.Logger) pipeline.Stage
}

func stageSpecs() []stageSpec {
	return []stageSpec{
		{
			use:   "profile",
			short: "Profile the raw CSV inputs",
			build: func(cfg *config.Config, logger *slog.Logger) pipeline.Stage {
				return profile.NewStage(cfg, logger)
			},
		},
		{
			use:   "transform",
			short: "Normalize raw inputs into the processed layer",
			build: func(cfg *config.Config, logger *slog.Logger) pipeline.Stage {
				return transform.NewStage(cfg, logger)
			},
		},
		{
			use:   "curated",
			short: "Build the curated dashboard tables",
			build: func(cfg *config.Config, logger *slog.Logger) pipeline.Stage {
				return curated.NewStage(cfg, logger)
			},
		},
		{
			use:   "graph",
			short: "Export Neo4j import CSVs",
			build: func(cfg *config.Config, logger *slog.Logger) pipeline.Stage {
				return graphexport.NewStage(cfg, logger)
			},
		},
		{
			use:   "sqlite",
			short: "Build the SQLite database",
			build: func(cfg *config.Config, logger *slog.Logger) pipeline.Stage {
				return sqliteout.NewStage(cfg, logger)
			},
		},
		{
			use:   "insights",
			short: "Write the insights summary from the curated layer",
			build: func(cfg *config.Config, logger *slog.Logger) pipeline.Stage {
				return curated.NewInsightsStage(cfg, logger)
			},
		},
	}
}

func newStageCommands(ctx *commandContext) []*cobra.Command {
	specs := stageSpecs()
	commands := make([]*cobra.Command, 0, len(specs))
	for _, spec := range specs {
		spec := spec
		commands = append(commands, &cobra.Command{
			Use:   spec.use,
			Short: spec.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				logger, err := ctx.newLogger()
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}

				signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer cancel()

				lock := pipeline.NewLock(cfg.Paths.LogDir)
				if err := lock.Acquire(); err != nil {
					return err
				}
				defer lock.Release()

				return pipeline.Run(signalCtx, logger, spec.build(cfg, logger))
			},
		})
	}
	return commands
}
