package jobs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/queries"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// tripLocationFetcher is the slice of GetTripLocationQueryHandler the poll
// job uses.
type tripLocationFetcher interface {
	Handle(ctx context.Context, query queries.GetTripLocationQuery) (*ports.TripLocation, error)
}

// DriverLocationPollJob fetches the last known vehicle position for the
// active trip roughly every 7 seconds, for display alongside the route.
// The job follows trip lifecycle events: activation sets the polled trip,
// termination clears it. Like the trip detail poll it only runs while a
// trip is focused, and regaining focus fetches immediately.
type DriverLocationPollJob struct {
	handler tripLocationFetcher
	focus   *FocusRegistry
	cron    *cron.Cron
	logger  *slog.Logger
	unhook  func()

	mu     sync.Mutex
	active *kernel.UUID
	latest *ports.TripLocation
}

// NewDriverLocationPollJob creates a new job polling the active trip's
// vehicle position.
func NewDriverLocationPollJob(handler tripLocationFetcher, focus *FocusRegistry, logger *slog.Logger) *DriverLocationPollJob {
	return &DriverLocationPollJob{
		handler: handler,
		focus:   focus,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_location_poll_job"),
	}
}

// HandleEvent follows trip activation and termination. Subscribe it to the
// event bus alongside the tracking controller.
func (j *DriverLocationPollJob) HandleEvent(e events.Event) {
	switch ev := e.(type) {
	case events.TripActivated:
		j.mu.Lock()
		tripID := ev.TripID
		j.active = &tripID
		j.latest = nil
		j.mu.Unlock()
	case events.TripTerminated:
		j.mu.Lock()
		if j.active != nil && j.active.IsEqual(ev.TripID) {
			j.active = nil
			j.latest = nil
		}
		j.mu.Unlock()
	}
}

// Latest returns the most recently fetched position, or nil when no trip is
// active or nothing was fetched yet.
func (j *DriverLocationPollJob) Latest() *ports.TripLocation {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.latest
}

// Start schedules the poll and registers the refocus hook.
func (j *DriverLocationPollJob) Start() error {
	_, err := j.cron.AddFunc("*/7 * * * * *", func() {
		j.poll(context.Background())
	})
	if err != nil {
		return err
	}

	j.unhook = j.focus.OnFocus(func(kernel.UUID) {
		go j.poll(context.Background())
	})

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver location poll job started (running every 7 seconds while a trip is active and focused)")
	return nil
}

// Stop stops the poll and detaches the refocus hook.
func (j *DriverLocationPollJob) Stop() {
	if j.unhook != nil {
		j.unhook()
		j.unhook = nil
	}
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver location poll job stopped")
}

func (j *DriverLocationPollJob) poll(ctx context.Context) {
	j.mu.Lock()
	active := j.active
	j.mu.Unlock()
	if active == nil {
		return
	}
	// Nobody is looking at the trip, so skip the fetch. The refocus hook
	// refreshes immediately when the view comes back.
	if _, ok := j.focus.Focused(); !ok {
		return
	}

	query, err := queries.NewGetTripLocationQuery(*active)
	if err != nil {
		j.logger.ErrorContext(ctx, "Driver location poll skipped invalid trip id", "error", err)
		return
	}

	loc, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.WarnContext(ctx, "Driver location poll failed", "tripId", active.String(), "error", err)
		return
	}

	j.mu.Lock()
	j.latest = loc
	j.mu.Unlock()
}
