package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/projection"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestStop(t *testing.T, seq int, kind trip.StopKind) *trip.Stop {
	t.Helper()
	s, err := trip.NewStop(
		kernel.NewUUID(),
		seq,
		kind,
		trip.Address{Line1: "88 Market St", City: "Singapore", PostalCode: "048948"},
		time.Now().Add(time.Duration(seq)*time.Hour),
	)
	require.NoError(t, err)
	return s
}

func newTestTrip(t *testing.T, status trip.Status, stops ...*trip.Stop) *trip.Trip {
	t.Helper()
	vehicleID := ""
	if status != trip.StatusScheduled {
		vehicleID = "SGX-1234"
	}
	tr, err := trip.RestoreTrip(
		kernel.NewUUID(), status,
		time.Now(), time.Now().Add(8*time.Hour),
		nil, vehicleID, nil,
		stops,
		1,
	)
	require.NoError(t, err)
	return tr
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Acme Pte Ltd", []order.StopTemplate{
		{
			Kind:      trip.StopKindDelivery,
			Address:   trip.Address{Line1: "8 Depot Rd", City: "Singapore", PostalCode: "109682"},
			PlannedAt: time.Now().Add(2 * time.Hour),
		},
	})
	require.NoError(t, err)
	return o
}

func newStoreWith(t *testing.T, trips []*trip.Trip, orders []*order.Order) *projection.Store {
	t.Helper()
	store := projection.NewStore()
	store.ReplaceTrips(trips)
	store.ReplaceOrders(orders)
	return store
}
