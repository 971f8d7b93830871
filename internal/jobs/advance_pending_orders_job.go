package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AdvancePendingOrdersJob runs the periodic sweep that moves Pending orders
// to Processing. The cron schedule is injected so deployments can tune the
// sweep frequency without a rebuild.
type AdvancePendingOrdersJob struct {
	handler  commands.AdvancePendingOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAdvancePendingOrdersJob creates the sweep job with the given cron
// schedule (six-field spec with seconds, e.g. "*/30 * * * * *").
func NewAdvancePendingOrdersJob(
	handler commands.AdvancePendingOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AdvancePendingOrdersJob {
	return &AdvancePendingOrdersJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "advance_pending_orders_job"),
	}
}

// Start schedules the sweep. Returns an error if the cron spec is invalid.
func (j *AdvancePendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewAdvancePendingOrdersCommand()

		moved, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Pending order sweep failed", "error", handleErr)
			return
		}

		if moved > 0 {
			j.logger.InfoContext(ctx, "Pending orders advanced to processing", "moved", moved)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order sweep started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *AdvancePendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order sweep stopped")
}
