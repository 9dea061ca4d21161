package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/projection"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/queries"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTripsForDateQueryHandler(t *testing.T) {
	t.Run("each_fetched_trip_lands_in_the_projection", func(t *testing.T) {
		day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		first := newTestTrip(t, trip.StatusScheduled, 1)
		second := newTestTrip(t, trip.StatusAccepted, 3)
		store := projection.NewStore()

		gateway := &MockGateway{}
		gateway.On("FetchTripsForDate", mock.Anything, day).Return([]*trip.Trip{first, second}, nil)
		handler := queries.NewGetTripsForDateQueryHandler(
			gateway, store, newStubMarks(), &recordPublisher{}, testLogger(),
		)

		query, err := queries.NewGetTripsForDateQuery(day)
		require.NoError(t, err)
		trips, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Len(t, trips, 2)
		_, ok := store.Trip(first.ID())
		assert.True(t, ok)
		_, ok = store.Trip(second.ID())
		assert.True(t, ok)
	})

	t.Run("zero_date_is_rejected_at_construction", func(t *testing.T) {
		_, err := queries.NewGetTripsForDateQuery(time.Time{})
		require.Error(t, err)
	})
}

func TestGetUnassignedOrdersQueryHandler(t *testing.T) {
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	stale, err := order.NewOrder(kernel.NewUUID(), "Stale Pte Ltd", []order.StopTemplate{
		{Kind: trip.StopKindDelivery, PlannedAt: day.Add(10 * time.Hour)},
	})
	require.NoError(t, err)
	fresh, err := order.NewOrder(kernel.NewUUID(), "Fresh Pte Ltd", []order.StopTemplate{
		{Kind: trip.StopKindPickup, PlannedAt: day.Add(11 * time.Hour)},
	})
	require.NoError(t, err)

	store := projection.NewStore()
	store.ReplaceOrders([]*order.Order{stale})

	gateway := &MockGateway{}
	gateway.On("FetchUnassignedOrders", mock.Anything, day).Return([]*order.Order{fresh}, nil)
	handler := queries.NewGetUnassignedOrdersQueryHandler(gateway, store)

	query, err := queries.NewGetUnassignedOrdersQuery(day)
	require.NoError(t, err)
	orders, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	_, ok := store.Order(stale.ID())
	assert.False(t, ok)
	_, ok = store.Order(fresh.ID())
	assert.True(t, ok)
}
