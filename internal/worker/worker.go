// Package worker runs the periodic ledger maintenance sweeps: completing
// cancellations whose period has ended and flagging subscriptions whose
// invoice has gone past due.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fieldhouse/ledger/internal/events"
	"github.com/fieldhouse/ledger/internal/repository"
	"github.com/fieldhouse/ledger/internal/telemetry"
)

// Config holds worker configuration.
type Config struct {
	// WorkerID uniquely identifies this worker instance in logs.
	WorkerID string

	// Interval is how often the maintenance sweeps run.
	Interval time.Duration
}

// Worker runs the maintenance sweeps on a fixed interval.
type Worker struct {
	config  Config
	repo    repository.Querier
	events  events.Publisher
	metrics *telemetry.BillingMetrics
	logger  zerolog.Logger
}

// New creates a new maintenance worker.
func New(repo repository.Querier, publisher events.Publisher, metrics *telemetry.BillingMetrics, config Config, logger zerolog.Logger) *Worker {
	if config.WorkerID == "" {
		config.WorkerID = fmt.Sprintf("worker-%s", uuid.NewString()[:8])
	}
	if config.Interval == 0 {
		config.Interval = 15 * time.Minute
	}

	return &Worker{
		config:  config,
		repo:    repo,
		events:  publisher,
		metrics: metrics,
		logger:  logger.With().Str("component", "worker").Str("worker_id", config.WorkerID).Logger(),
	}
}

// Start runs sweeps until the context is canceled. The first sweep runs
// immediately rather than waiting out the first interval.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.config.Interval).Msg("worker starting")

	w.runSweeps(ctx)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("worker stopping")
			return ctx.Err()
		case <-ticker.C:
			w.runSweeps(ctx)
		}
	}
}

func (w *Worker) runSweeps(ctx context.Context) {
	w.completeDueCancellations(ctx)
	w.markSubscriptionsPastDue(ctx)
}

// completeDueCancellations finishes deferred cancellations whose billing
// period has rolled over, publishing a canceled event for each.
func (w *Worker) completeDueCancellations(ctx context.Context) {
	rows, err := w.repo.CompleteDueCancellations(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("cancellation sweep failed")
		return
	}
	if len(rows) == 0 {
		return
	}

	w.logger.Info().Int("count", len(rows)).Msg("completed due cancellations")

	for _, row := range rows {
		w.metrics.SubscriptionsCanceled.Inc()

		if err := w.events.Publish(ctx, events.SubjectSubscriptionCanceled, events.SubscriptionCanceled{
			SubscriptionID: repository.UUIDValue(row.SubscriptionID),
			AccountID:      repository.UUIDValue(row.AccountID),
			Immediately:    false,
			OccurredAt:     row.CanceledAt.Time,
		}); err != nil {
			w.logger.Warn().Err(err).
				Str("subscription_id", repository.UUIDValue(row.SubscriptionID).String()).
				Msg("failed to publish subscription canceled event")
		}
	}
}

// markSubscriptionsPastDue flags active subscriptions whose open invoice is
// past its due date.
func (w *Worker) markSubscriptionsPastDue(ctx context.Context) {
	rows, err := w.repo.MarkSubscriptionsPastDue(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("past-due sweep failed")
		return
	}
	if len(rows) == 0 {
		return
	}

	w.logger.Info().Int("count", len(rows)).Msg("marked subscriptions past due")
}
