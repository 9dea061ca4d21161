package queries_test

import (
	"context"
	"testing"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/projection"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/queries"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTripQueryHandler(t *testing.T) {
	t.Run("external_route_change_is_published_once", func(t *testing.T) {
		known := newTestTrip(t, trip.StatusInTransit, 3)
		store := projection.NewStore()
		store.ReplaceTrip(known)
		marks := newStubMarks()
		require.NoError(t, marks.Put(context.Background(), known.ID(), 3))

		fetched := restoredAs(t, known, trip.StatusInTransit, 5, nil)
		gateway := &MockGateway{}
		gateway.On("FetchTrip", mock.Anything, known.ID()).Return(fetched, nil)
		publisher := &recordPublisher{}
		handler := queries.NewGetTripQueryHandler(gateway, store, marks, publisher, testLogger())

		query, err := queries.NewGetTripQuery(known.ID())
		require.NoError(t, err)

		got, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.RouteVersion())

		published := publisher.published()
		require.Len(t, published, 1)
		changed, ok := published[0].(events.RouteChangedExternally)
		require.True(t, ok)
		assert.True(t, changed.TripID.IsEqual(known.ID()))
		assert.Equal(t, int64(3), changed.KnownVersion)
		assert.Equal(t, int64(5), changed.ServerVersion)

		// The mark advanced with the install, so fetching the same version
		// again reports nothing.
		_, err = handler.Handle(context.Background(), query)
		require.NoError(t, err)
		assert.Len(t, publisher.published(), 1)
	})

	t.Run("first_fetch_of_a_trip_reports_no_change", func(t *testing.T) {
		fetched := newTestTrip(t, trip.StatusScheduled, 4)
		gateway := &MockGateway{}
		gateway.On("FetchTrip", mock.Anything, fetched.ID()).Return(fetched, nil)
		publisher := &recordPublisher{}
		marks := newStubMarks()
		handler := queries.NewGetTripQueryHandler(gateway, projection.NewStore(), marks, publisher, testLogger())

		query, err := queries.NewGetTripQuery(fetched.ID())
		require.NoError(t, err)
		_, err = handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Empty(t, publisher.published())
		mark, ok, _ := marks.Get(context.Background(), fetched.ID())
		require.True(t, ok)
		assert.Equal(t, int64(4), mark)
	})

	t.Run("termination_observed_on_refresh_is_published", func(t *testing.T) {
		known := newTestTrip(t, trip.StatusInTransit, 2)
		store := projection.NewStore()
		store.ReplaceTrip(known)
		marks := newStubMarks()
		require.NoError(t, marks.Put(context.Background(), known.ID(), 2))

		fetched := restoredAs(t, known, trip.StatusCompleted, 2, nil)
		gateway := &MockGateway{}
		gateway.On("FetchTrip", mock.Anything, known.ID()).Return(fetched, nil)
		publisher := &recordPublisher{}
		handler := queries.NewGetTripQueryHandler(gateway, store, marks, publisher, testLogger())

		query, err := queries.NewGetTripQuery(known.ID())
		require.NoError(t, err)
		_, err = handler.Handle(context.Background(), query)

		require.NoError(t, err)
		published := publisher.published()
		require.Len(t, published, 1)
		terminated, ok := published[0].(events.TripTerminated)
		require.True(t, ok)
		assert.True(t, terminated.TripID.IsEqual(known.ID()))
		assert.Equal(t, trip.StatusCompleted, terminated.Status)
	})

	t.Run("fetching_an_in_transit_trip_after_restart_reactivates_tracking", func(t *testing.T) {
		// A restart empties the projection, so the trip arrives in transit
		// with no active predecessor. Activation has to fire again or the
		// tracking controller stays idle.
		fetched := newTestTrip(t, trip.StatusInTransit, 2)
		gateway := &MockGateway{}
		gateway.On("FetchTrip", mock.Anything, fetched.ID()).Return(fetched, nil)
		publisher := &recordPublisher{}
		store := projection.NewStore()
		handler := queries.NewGetTripQueryHandler(gateway, store, newStubMarks(), publisher, testLogger())

		query, err := queries.NewGetTripQuery(fetched.ID())
		require.NoError(t, err)
		_, err = handler.Handle(context.Background(), query)
		require.NoError(t, err)

		published := publisher.published()
		require.Len(t, published, 1)
		activated, ok := published[0].(events.TripActivated)
		require.True(t, ok)
		assert.True(t, activated.TripID.IsEqual(fetched.ID()))

		// The trip is projected as active now, so a refetch stays silent.
		_, err = handler.Handle(context.Background(), query)
		require.NoError(t, err)
		assert.Len(t, publisher.published(), 1)
	})

	t.Run("mark_read_failure_keeps_the_stored_mark", func(t *testing.T) {
		known := newTestTrip(t, trip.StatusInTransit, 3)
		store := projection.NewStore()
		store.ReplaceTrip(known)
		marks := newStubMarks()
		require.NoError(t, marks.Put(context.Background(), known.ID(), 3))

		fetched := restoredAs(t, known, trip.StatusInTransit, 5, nil)
		gateway := &MockGateway{}
		gateway.On("FetchTrip", mock.Anything, known.ID()).Return(fetched, nil)
		publisher := &recordPublisher{}
		handler := queries.NewGetTripQueryHandler(gateway, store, marks, publisher, testLogger())

		query, err := queries.NewGetTripQuery(known.ID())
		require.NoError(t, err)

		// A failing read must not let the install advance the mark, or the
		// route change would never be reported.
		marks.failReads(assert.AnError)
		_, err = handler.Handle(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, publisher.published())
		mark, ok := marks.stored(known.ID())
		require.True(t, ok)
		assert.Equal(t, int64(3), mark)

		// Once reads recover the conflict surfaces on the next fetch.
		marks.failReads(nil)
		_, err = handler.Handle(context.Background(), query)
		require.NoError(t, err)
		published := publisher.published()
		require.Len(t, published, 1)
		changed, ok := published[0].(events.RouteChangedExternally)
		require.True(t, ok)
		assert.Equal(t, int64(3), changed.KnownVersion)
		assert.Equal(t, int64(5), changed.ServerVersion)
	})

	t.Run("refresh_discards_optimistic_patches", func(t *testing.T) {
		known := newTestTrip(t, trip.StatusInTransit, 1)
		store := projection.NewStore()
		store.ReplaceTrip(known)

		fetched := restoredAs(t, known, trip.StatusInTransit, 1, nil)
		gateway := &MockGateway{}
		gateway.On("FetchTrip", mock.Anything, known.ID()).Return(fetched, nil)
		handler := queries.NewGetTripQueryHandler(gateway, store, newStubMarks(), &recordPublisher{}, testLogger())

		_, err := handler.RefreshTrip(context.Background(), known.ID())

		require.NoError(t, err)
		assert.False(t, store.HasPendingOps(known.ID()))
		got, _ := store.Trip(known.ID())
		assert.Same(t, fetched, got)
	})
}
