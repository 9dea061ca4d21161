package jobs

import (
	"fmt"
	"log/slog"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tripPollJob           *TripPollJob
	driverLocationPollJob *DriverLocationPollJob
}

// NewJobManager creates a new job manager with all required jobs.
// The caller subscribes DriverLocationPoll to the event bus.
func NewJobManager(
	getTripHandler queries.GetTripQueryHandler,
	getTripLocationHandler queries.GetTripLocationQueryHandler,
	focus *FocusRegistry,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		tripPollJob:           NewTripPollJob(getTripHandler, focus, logger),
		driverLocationPollJob: NewDriverLocationPollJob(getTripLocationHandler, focus, logger),
	}
}

// DriverLocationPoll exposes the location poll job for event subscription
// and latest-position reads.
func (jm *JobManager) DriverLocationPoll() *DriverLocationPollJob {
	return jm.driverLocationPollJob
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tripPollJob.Start(); err != nil {
		return fmt.Errorf("failed to start trip poll job: %w", err)
	}

	if err := jm.driverLocationPollJob.Start(); err != nil {
		jm.tripPollJob.Stop()
		return fmt.Errorf("failed to start driver location poll job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverLocationPollJob.Stop()
	jm.tripPollJob.Stop()
}
