package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"artmarket/internal/core/application/usecases/queries"
)

// deliveryRequestLister is the slice of the read side the reminder job needs.
type deliveryRequestLister interface {
	Handle(ctx context.Context, query queries.ListDeliveryRequestsQuery) ([]queries.DeliveryRequestResponse, error)
}

// StalePendingReminderJob periodically lists delivery requests that have been
// waiting for a partner longer than the configured threshold and logs them for
// ops follow-up. It never mutates state; nagging a human is the whole job.
type StalePendingReminderJob struct {
	lister    deliveryRequestLister
	cron      *cron.Cron
	schedule  string
	threshold time.Duration
	logger    *slog.Logger
}

// NewStalePendingReminderJob creates the reminder job. schedule is a
// six-field cron expression; threshold is the age past which a Pending request
// counts as stale.
func NewStalePendingReminderJob(
	lister deliveryRequestLister,
	schedule string,
	threshold time.Duration,
	logger *slog.Logger,
) *StalePendingReminderJob {
	return &StalePendingReminderJob{
		lister:    lister,
		cron:      cron.New(cron.WithSeconds()),
		schedule:  schedule,
		threshold: threshold,
		logger:    logger.With("component", "stale_pending_reminder_job"),
	}
}

// Start schedules the job.
func (j *StalePendingReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending reminder job started",
		"schedule", j.schedule,
		"threshold", j.threshold.String(),
	)
	return nil
}

// Stop stops the job.
func (j *StalePendingReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending reminder job stopped")
}

func (j *StalePendingReminderJob) run(ctx context.Context) {
	query, err := queries.NewListDeliveryRequestsQuery(queries.BucketPending, nil, nil, nil)
	if err != nil {
		j.logger.ErrorContext(ctx, "failed to build pending requests query", "error", err)
		return
	}

	requests, err := j.lister.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "failed to list pending delivery requests", "error", err)
		return
	}

	staleBefore := time.Now().UTC().Add(-j.threshold)
	stale := 0
	for _, request := range requests {
		if !request.CreatedAt.Before(staleBefore) {
			continue
		}
		stale++
		j.logger.WarnContext(ctx, "delivery request waiting too long for a partner",
			"orderId", request.OrderID,
			"orderKind", request.OrderKind,
			"artistId", request.ArtistID,
			"waitingSince", request.CreatedAt,
		)
	}

	if stale > 0 {
		j.logger.InfoContext(ctx, "stale pending reminder finished",
			"pending", len(requests),
			"stale", stale,
		)
	}
}
