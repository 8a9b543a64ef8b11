package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoBatchJob periodically runs the batch builder over all pending orders so
// dispatch boards fill up without an operator pressing the button.
type AutoBatchJob struct {
	handler   commands.BuildBatchesCommandHandler
	schedule  string
	algorithm string
	maxWeight float64
	maxOrders int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewAutoBatchJob creates the scheduled batch builder. The schedule is a
// standard five-field cron expression; limits mirror the manual endpoint's
// defaults.
func NewAutoBatchJob(
	handler commands.BuildBatchesCommandHandler,
	schedule string,
	algorithm string,
	maxWeight float64,
	maxOrders int,
	logger *slog.Logger,
) *AutoBatchJob {
	return &AutoBatchJob{
		handler:   handler,
		schedule:  schedule,
		algorithm: algorithm,
		maxWeight: maxWeight,
		maxOrders: maxOrders,
		cron:      cron.New(),
		logger:    logger.With("component", "auto_batch_job"),
	}
}

// Start schedules the job. A run over zero pending orders is a no-op, not an
// error.
func (j *AutoBatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewBuildBatchesCommand(j.algorithm, j.maxWeight, j.maxOrders)
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto batch job misconfigured", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto batch job failed", "error", err)
			return
		}

		if len(result.Batches) > 0 || len(result.Unbatchable) > 0 {
			j.logger.InfoContext(ctx, "Auto batch run finished",
				"batches", len(result.Batches),
				"unbatchable", len(result.Unbatchable))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto batch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled job.
func (j *AutoBatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto batch job stopped")
}
