package jobs

import (
	"context"
	"log/slog"
	"time"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStalePackageSchedule runs the check every ten minutes, on the minute.
const DefaultStalePackageSchedule = "0 */10 * * * *"

// StalePackageFinder lists live packages that never got a status record.
type StalePackageFinder interface {
	Handle(ctx context.Context, query queries.ListStalePackagesQuery) ([]queries.ListStalePackagesQueryResponse, error)
}

// StalePackageJob warns about packages that were created but never entered the
// ledger. It only reads; fixing them is left to an operator.
type StalePackageJob struct {
	finder    StalePackageFinder
	schedule  string
	olderThan time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStalePackageJob creates a job that runs on schedule (a cron spec with a
// seconds field) and reports packages older than olderThan.
func NewStalePackageJob(
	finder StalePackageFinder,
	schedule string,
	olderThan time.Duration,
	logger *slog.Logger,
) *StalePackageJob {
	if schedule == "" {
		schedule = DefaultStalePackageSchedule
	}
	return &StalePackageJob{
		finder:    finder,
		schedule:  schedule,
		olderThan: olderThan,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_package_job"),
	}
}

// Start schedules the check. An invalid schedule is returned as an error.
func (j *StalePackageJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Check(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale package check failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale package job started",
		"schedule", j.schedule, "older_than", j.olderThan.String())
	return nil
}

// Check runs one pass and returns how many stale packages it found.
func (j *StalePackageJob) Check(ctx context.Context) (int, error) {
	query, err := queries.NewListStalePackagesQuery(j.now(), j.olderThan)
	if err != nil {
		return 0, err
	}

	stale, err := j.finder.Handle(ctx, query)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	oldest := stale[0]
	j.logger.WarnContext(ctx, "Packages without status history",
		"count", len(stale),
		"created_before", query.CreatedBefore(),
		"oldest_tracking_number", oldest.TrackingNumber,
		"oldest_created_at", oldest.CreatedAt,
	)
	return len(stale), nil
}

// Stop stops the schedule and waits for a running check to finish.
func (j *StalePackageJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale package job stopped")
}
