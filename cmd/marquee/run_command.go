package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"marquee/internal/curated"
	"marquee/internal/graphexport"
	"marquee/internal/pipeline"
	"marquee/internal/profile"
	"marquee/internal/sqliteout"
	"marquee/internal/transform"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var skipProfile bool
	var skipGraph bool
	var skipSQLite bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline",
		Long:  "Run profile, transform, curated, graph, sqlite, and insights in order.",
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

			var stages []pipeline.Stage
			if !skipProfile {
				stages = append(stages, profile.NewStage(cfg, logger))
			}
			stages = append(stages,
				transform.NewStage(cfg, logger),
				curated.NewStage(cfg, logger),
			)
			if !skipGraph {
				stages = append(stages, graphexport.NewStage(cfg, logger))
			}
			if !skipSQLite {
				stages = append(stages, sqliteout.NewStage(cfg, logger))
			}
			stages = append(stages, curated.NewInsightsStage(cfg, logger))

			return pipeline.Run(signalCtx, logger, stages...)
		},
	}

	cmd.Flags().BoolVar(&skipProfile, "skip-profile", false, "Skip the raw profiling stage")
	cmd.Flags().BoolVar(&skipGraph, "skip-graph", false, "Skip the graph export stage")
	cmd.Flags().BoolVar(&skipSQLite, "skip-sqlite", false, "Skip the SQLite build stage")
	return cmd
}
