package jobs

import (
	"context"
	"log/slog"
	"time"

	"market/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPurgeSchedule runs the purge at the start of every minute.
const DefaultPurgeSchedule = "0 * * * * *"

const purgeTimeout = 30 * time.Second

type purgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeEmptyOrdersCommand) (int, error)
}

// EmptyOrderPurgeJob deletes orders that lost all their products while still
// waiting in the warehouse.
type EmptyOrderPurgeJob struct {
	handler   purgeHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewEmptyOrderPurgeJob takes a six-field cron schedule (seconds first).
// An empty schedule falls back to DefaultPurgeSchedule.
func NewEmptyOrderPurgeJob(handler purgeHandler, schedule string, batchSize int, logger *slog.Logger) *EmptyOrderPurgeJob {
	if schedule == "" {
		schedule = DefaultPurgeSchedule
	}
	if batchSize <= 0 {
		batchSize = commands.DefaultPurgeBatchSize
	}

	return &EmptyOrderPurgeJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "empty_order_purge_job"),
	}
}

func (j *EmptyOrderPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		_, _ = j.Run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Empty order purge job started", "schedule", j.schedule)
	return nil
}

// Run performs a single purge and logs its outcome.
func (j *EmptyOrderPurgeJob) Run(ctx context.Context) (int, error) {
	cmd, err := commands.NewPurgeEmptyOrdersCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Empty order purge job misconfigured", "error", err)
		return 0, err
	}

	purged, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Empty order purge job failed", "error", err)
		return 0, err
	}

	if purged > 0 {
		j.logger.InfoContext(ctx, "Empty orders purged", "count", purged)
	}
	return purged, nil
}

// Stop waits for a running purge to finish.
func (j *EmptyOrderPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Empty order purge job stopped")
}
