package jobs

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/queries"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLocationFetcher struct {
	mu       sync.Mutex
	location *ports.TripLocation
	requests []kernel.UUID
}

func (s *stubLocationFetcher) Handle(_ context.Context, query queries.GetTripLocationQuery) (*ports.TripLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, query.TripID())
	return s.location, nil
}

func (s *stubLocationFetcher) fetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func testTripLocation(t *testing.T) *ports.TripLocation {
	t.Helper()
	point, err := kernel.NewGeoPoint(1.3521, 103.8198)
	require.NoError(t, err)
	return &ports.TripLocation{Point: point}
}

func TestDriverLocationPollJob_PollPausesWhileBlurred(t *testing.T) {
	fetcher := &stubLocationFetcher{location: testTripLocation(t)}
	focus := NewFocusRegistry()
	job := NewDriverLocationPollJob(fetcher, focus, slog.New(slog.DiscardHandler))

	tripID := kernel.NewUUID()
	job.HandleEvent(events.TripActivated{TripID: tripID})

	// Active trip but nobody looking at it: a tick does nothing.
	job.poll(context.Background())
	assert.Zero(t, fetcher.fetches())
	assert.Nil(t, job.Latest())

	focus.Focus(tripID)
	job.poll(context.Background())
	assert.Equal(t, 1, fetcher.fetches())
	require.NotNil(t, job.Latest())
	assert.InDelta(t, 1.3521, job.Latest().Point.Lat(), 1e-9)
}

func TestDriverLocationPollJob_RegainingFocusFetchesImmediately(t *testing.T) {
	fetcher := &stubLocationFetcher{location: testTripLocation(t)}
	focus := NewFocusRegistry()
	job := NewDriverLocationPollJob(fetcher, focus, slog.New(slog.DiscardHandler))

	require.NoError(t, job.Start())
	defer job.Stop()

	tripID := kernel.NewUUID()
	job.HandleEvent(events.TripActivated{TripID: tripID})

	focus.Focus(tripID)
	require.Eventually(t, func() bool {
		return fetcher.fetches() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDriverLocationPollJob_PollStopsWithoutActiveTrip(t *testing.T) {
	fetcher := &stubLocationFetcher{location: testTripLocation(t)}
	focus := NewFocusRegistry()
	job := NewDriverLocationPollJob(fetcher, focus, slog.New(slog.DiscardHandler))

	tripID := kernel.NewUUID()
	focus.Focus(tripID)
	job.HandleEvent(events.TripActivated{TripID: tripID})
	job.poll(context.Background())
	require.Equal(t, 1, fetcher.fetches())

	job.HandleEvent(events.TripTerminated{TripID: tripID})
	job.poll(context.Background())
	assert.Equal(t, 1, fetcher.fetches())
	assert.Nil(t, job.Latest())
}
