package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"marquee/internal/logging"
)

// Stage is one batch transform of the pipeline.
type Stage interface {
	Name() string
	Run(ctx context.Context) error
}

// Run executes stages in order under a fresh run ID. The first failure stops
// the run and is returned wrapped with the stage name.
func Run(ctx context.Context, logger *slog.Logger, stages ...Stage) error {
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	runLogger := logging.WithContext(ctx, logger)

	runLogger.Info("pipeline started", logging.Int("stages", len(stages)))
	started := time.Now()

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}
		stageCtx := logging.WithStage(ctx, stage.Name())
		stageLogger := logging.WithContext(stageCtx, logger)

		stageLogger.Info("stage started", logging.String(logging.FieldEventType, "stage_start"))
		stageStart := time.Now()

		if err := stage.Run(stageCtx); err != nil {
			stageLogger.Error("stage failed",
				logging.String(logging.FieldEventType, "stage_failure"),
				logging.Duration("elapsed", time.Since(stageStart)),
				logging.Error(err),
			)
			return fmt.Errorf("stage %s: %w", stage.Name(), err)
		}

		stageLogger.Info("stage completed",
			logging.String(logging.FieldEventType, "stage_complete"),
			logging.Duration("elapsed", time.Since(stageStart)),
		)
	}

	runLogger.Info("pipeline completed", logging.Duration("elapsed", time.Since(started)))
	return nil
}

// Func adapts a function to the Stage interface.
type Func struct {
	StageName string
	Fn        func(ctx context.Context) error
}

func (f Func) Name() string { return f.StageName }

func (f Func) Run(ctx context.Context) error {
	if f.Fn == nil {
		return Wrap(ErrValidation, f.StageName, "run", "stage function not configured", nil)
	}
	return f.Fn(ctx)
}
