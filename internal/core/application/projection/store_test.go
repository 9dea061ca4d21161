package projection_test

import (
	"testing"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/projection"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStop(t *testing.T, seq int) *trip.Stop {
	t.Helper()
	s, err := trip.NewStop(
		kernel.NewUUID(),
		seq,
		trip.StopKindDelivery,
		trip.Address{Line1: "1 Test Lane", City: "Singapore", PostalCode: "049999"},
		time.Now().Add(time.Duration(seq)*time.Hour),
	)
	require.NoError(t, err)
	return s
}

func newTestTrip(t *testing.T, stops ...*trip.Stop) *trip.Trip {
	t.Helper()
	tr, err := trip.RestoreTrip(
		kernel.NewUUID(),
		trip.StatusInTransit,
		time.Now(), time.Now().Add(8*time.Hour),
		nil, "SGX-1234", nil,
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

func TestStore_ReplaceTrip_ClearsPendingOps(t *testing.T) {
	store := projection.NewStore()
	stop := newTestStop(t, 1)
	tr := newTestTrip(t, stop)
	store.ReplaceTrip(tr)

	err := store.PatchTrip(kernel.NewUUID(), tr.ID(), func(pt *trip.Trip) error {
		return pt.StartStop(stop.ID())
	})
	require.NoError(t, err)
	assert.True(t, store.HasPendingOps(tr.ID()))

	refreshed, err := trip.RestoreTrip(
		tr.ID(), trip.StatusInTransit,
		tr.PlannedStart(), tr.PlannedEnd(),
		nil, "SGX-1234", nil,
		[]*trip.Stop{newTestStop(t, 1)},
		2,
	)
	require.NoError(t, err)
	store.ReplaceTrip(refreshed)

	assert.False(t, store.HasPendingOps(tr.ID()))
	got, ok := store.Trip(tr.ID())
	require.True(t, ok)
	assert.Equal(t, int64(2), got.RouteVersion())
}

func TestStore_PatchTrip(t *testing.T) {
	t.Run("failed_patch_records_no_op", func(t *testing.T) {
		store := projection.NewStore()
		first := newTestStop(t, 1)
		second := newTestStop(t, 2)
		tr := newTestTrip(t, first, second)
		store.ReplaceTrip(tr)

		err := store.PatchTrip(kernel.NewUUID(), tr.ID(), func(pt *trip.Trip) error {
			return pt.StartStop(second.ID())
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, trip.ErrStopOutOfOrder)
		assert.False(t, store.HasPendingOps(tr.ID()))
	})

	t.Run("unknown_trip_is_not_found", func(t *testing.T) {
		store := projection.NewStore()

		err := store.PatchTrip(kernel.NewUUID(), kernel.NewUUID(), func(pt *trip.Trip) error {
			return nil
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestStore_ReplaceOrders_ReplacesWholesale(t *testing.T) {
	store := projection.NewStore()
	stale := newTestOrder(t)
	store.ReplaceOrders([]*order.Order{stale})

	fresh := newTestOrder(t)
	store.ReplaceOrders([]*order.Order{fresh})

	_, ok := store.Order(stale.ID())
	assert.False(t, ok)
	got, ok := store.Order(fresh.ID())
	require.True(t, ok)
	assert.True(t, got.ID().IsEqual(fresh.ID()))
}

func TestStore_MoveStop(t *testing.T) {
	t.Run("stop_leaves_source_and_lands_at_target_tail", func(t *testing.T) {
		store := projection.NewStore()
		moved := newTestStop(t, 2)
		source := newTestTrip(t, newTestStop(t, 1), moved)
		target := newTestTrip(t, newTestStop(t, 1))
		store.ReplaceTrip(source)
		store.ReplaceTrip(target)

		err := store.MoveStop(kernel.NewUUID(), moved.ID(), source.ID(), target.ID())

		require.NoError(t, err)
		assert.Len(t, source.Stops(), 1)
		require.Len(t, target.Stops(), 2)
		assert.True(t, target.Stops()[1].ID().IsEqual(moved.ID()))
		assert.Equal(t, 2, target.Stops()[1].Sequence())
		assert.True(t, store.HasPendingOps(source.ID()))
		assert.True(t, store.HasPendingOps(target.ID()))
	})

	t.Run("terminal_stop_cannot_move_and_projections_stay_put", func(t *testing.T) {
		store := projection.NewStore()
		done := newTestStop(t, 1)
		source := newTestTrip(t, done, newTestStop(t, 2))
		require.NoError(t, source.StartStop(done.ID()))
		pod, err := trip.NewProofOfDelivery("pod/ref.jpg", nil, time.Now())
		require.NoError(t, err)
		require.NoError(t, source.CompleteStop(done.ID(), &pod))
		target := newTestTrip(t, newTestStop(t, 1))
		store.ReplaceTrip(source)
		store.ReplaceTrip(target)

		err = store.MoveStop(kernel.NewUUID(), done.ID(), source.ID(), target.ID())

		require.Error(t, err)
		assert.ErrorIs(t, err, trip.ErrStopIsTerminal)
		assert.Len(t, source.Stops(), 2)
		assert.Len(t, target.Stops(), 1)
		assert.False(t, store.HasPendingOps(source.ID()))
		assert.False(t, store.HasPendingOps(target.ID()))
	})
}
