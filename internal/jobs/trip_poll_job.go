package jobs

import (
	"context"
	"log/slog"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/queries"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// TripPollJob refreshes the focused trip from the backend roughly every 45
// seconds, keeping the projection and route version mark converged with
// changes made by dispatchers. While no trip is focused the job body is a
// no-op; regaining focus triggers an immediate fetch.
type TripPollJob struct {
	handler queries.GetTripQueryHandler
	focus   *FocusRegistry
	cron    *cron.Cron
	logger  *slog.Logger
	unhook  func()
}

// NewTripPollJob creates a new job polling the focused trip's detail.
func NewTripPollJob(handler queries.GetTripQueryHandler, focus *FocusRegistry, logger *slog.Logger) *TripPollJob {
	return &TripPollJob{
		handler: handler,
		focus:   focus,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "trip_poll_job"),
	}
}

// Start schedules the poll and registers the refocus hook.
func (j *TripPollJob) Start() error {
	_, err := j.cron.AddFunc("*/45 * * * * *", func() {
		tripID, ok := j.focus.Focused()
		if !ok {
			return
		}
		j.poll(context.Background(), tripID)
	})
	if err != nil {
		return err
	}

	j.unhook = j.focus.OnFocus(func(tripID kernel.UUID) {
		go j.poll(context.Background(), tripID)
	})

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Trip poll job started (running every 45 seconds while focused)")
	return nil
}

// Stop stops the poll and detaches the refocus hook.
func (j *TripPollJob) Stop() {
	if j.unhook != nil {
		j.unhook()
		j.unhook = nil
	}
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Trip poll job stopped")
}

func (j *TripPollJob) poll(ctx context.Context, tripID kernel.UUID) {
	query, err := queries.NewGetTripQuery(tripID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Trip poll skipped invalid trip id", "error", err)
		return
	}

	if _, err := j.handler.Handle(ctx, query); err != nil {
		j.logger.ErrorContext(ctx, "Trip poll failed", "tripId", tripID.String(), "error", err)
	}
}
