package jobs

import (
	"context"
	"log/slog"

	"drayage/internal/core/application/usecases/queries"
	"drayage/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultDispatchStatusSchedule refreshes the gauge every 30 seconds (seconds field enabled).
const DefaultDispatchStatusSchedule = "*/30 * * * * *"

// StatusCounter is the read side the job polls.
type StatusCounter interface {
	Handle(ctx context.Context, query queries.GetDispatchStatusCountsQuery) (queries.GetDispatchStatusCountsQueryResponse, error)
}

// DispatchStatusJob periodically publishes the number of dispatches per status.
type DispatchStatusJob struct {
	counter  StatusCounter
	metrics  ports.DispatchMetrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDispatchStatusJob creates the job. An empty schedule falls back to DefaultDispatchStatusSchedule.
func NewDispatchStatusJob(
	counter StatusCounter,
	metrics ports.DispatchMetrics,
	schedule string,
	logger *slog.Logger,
) *DispatchStatusJob {
	if schedule == "" {
		schedule = DefaultDispatchStatusSchedule
	}
	return &DispatchStatusJob{
		counter:  counter,
		metrics:  metrics,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dispatch_status_job"),
	}
}

// Start registers the refresh on the schedule and starts the scheduler.
// An invalid schedule is returned as an error and nothing is started.
func (j *DispatchStatusJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Dispatch status job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch status job started", "schedule", j.schedule)
	return nil
}

// Run performs one refresh. The gauge is left untouched when the query fails.
func (j *DispatchStatusJob) Run(ctx context.Context) error {
	counts, err := j.counter.Handle(ctx, queries.NewGetDispatchStatusCountsQuery())
	if err != nil {
		return err
	}

	j.metrics.SetDispatchCounts(counts)
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *DispatchStatusJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch status job stopped")
}
