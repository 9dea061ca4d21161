package trip_test

import (
	"fmt"
	"testing"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []trip.Status{
			trip.StatusScheduled,
			trip.StatusAccepted,
			trip.StatusInTransit,
			trip.StatusCompleted,
			trip.StatusCancelled,
			trip.StatusClosed,
		} {
			t.Run(s.String(), func(t *testing.T) {
				require.NoError(t, s.Validate())
			})
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		for _, s := range []trip.Status{trip.StatusUnknown, trip.Status(-1), trip.Status(99)} {
			t.Run(fmt.Sprintf("value_%d", int(s)), func(t *testing.T) {
				err := s.Validate()
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_every_valid_status", func(t *testing.T) {
		for _, s := range []trip.Status{
			trip.StatusScheduled,
			trip.StatusAccepted,
			trip.StatusInTransit,
			trip.StatusCompleted,
			trip.StatusCancelled,
			trip.StatusClosed,
		} {
			parsed, err := trip.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_labels", func(t *testing.T) {
		_, err := trip.StatusFromString("Paused")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("scheduled_can_be_accepted", func(t *testing.T) {
		next, err := trip.StatusScheduled.Accept()
		require.NoError(t, err)
		assert.Equal(t, trip.StatusAccepted, next)
	})

	t.Run("anything_else_cannot", func(t *testing.T) {
		for _, s := range []trip.Status{
			trip.StatusAccepted,
			trip.StatusInTransit,
			trip.StatusCompleted,
			trip.StatusCancelled,
			trip.StatusClosed,
		} {
			_, err := s.Accept()
			require.Error(t, err, "status %s", s)
		}
	})
}

func TestStatus_Start(t *testing.T) {
	t.Run("accepted_can_start", func(t *testing.T) {
		next, err := trip.StatusAccepted.Start()
		require.NoError(t, err)
		assert.Equal(t, trip.StatusInTransit, next)
	})

	t.Run("in_transit_and_terminal_cannot_start", func(t *testing.T) {
		for _, s := range []trip.Status{
			trip.StatusScheduled,
			trip.StatusInTransit,
			trip.StatusCompleted,
			trip.StatusCancelled,
			trip.StatusClosed,
		} {
			_, err := s.Start()
			require.Error(t, err, "status %s", s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_CanEditRoute(t *testing.T) {
	assert.True(t, trip.StatusScheduled.CanEditRoute())
	assert.True(t, trip.StatusAccepted.CanEditRoute())
	assert.True(t, trip.StatusInTransit.CanEditRoute())
	assert.True(t, trip.StatusCompleted.CanEditRoute())
	assert.False(t, trip.StatusCancelled.CanEditRoute())
	assert.False(t, trip.StatusClosed.CanEditRoute())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, trip.StatusScheduled.IsTerminal())
	assert.False(t, trip.StatusAccepted.IsTerminal())
	assert.False(t, trip.StatusInTransit.IsTerminal())
	assert.True(t, trip.StatusCompleted.IsTerminal())
	assert.True(t, trip.StatusCancelled.IsTerminal())
	assert.True(t, trip.StatusClosed.IsTerminal())
}

func TestStopStatus_Transitions(t *testing.T) {
	t.Run("scheduled_starts", func(t *testing.T) {
		next, err := trip.StopStatusScheduled.Start()
		require.NoError(t, err)
		assert.Equal(t, trip.StopStatusInTransit, next)
	})

	t.Run("in_transit_completes", func(t *testing.T) {
		next, err := trip.StopStatusInTransit.Complete()
		require.NoError(t, err)
		assert.Equal(t, trip.StopStatusCompleted, next)
	})

	t.Run("in_transit_fails", func(t *testing.T) {
		next, err := trip.StopStatusInTransit.Fail()
		require.NoError(t, err)
		assert.Equal(t, trip.StopStatusFailed, next)
	})

	t.Run("scheduled_cannot_complete_or_fail", func(t *testing.T) {
		_, err := trip.StopStatusScheduled.Complete()
		require.Error(t, err)
		_, err = trip.StopStatusScheduled.Fail()
		require.Error(t, err)
	})

	t.Run("terminal_states_reject_all_transitions", func(t *testing.T) {
		for _, s := range []trip.StopStatus{trip.StopStatusCompleted, trip.StopStatusFailed} {
			_, err := s.Start()
			require.Error(t, err)
			_, err = s.Complete()
			require.Error(t, err)
			_, err = s.Fail()
			require.Error(t, err)
			assert.True(t, s.IsTerminal())
		}
	})
}

func TestStopKindFromString(t *testing.T) {
	testCases := []struct {
		raw      string
		expected trip.StopKind
	}{
		{"PICKUP", trip.StopKindPickup},
		{"pickup", trip.StopKindPickup},
		{" Delivery ", trip.StopKindDelivery},
		{"DELIVERY", trip.StopKindDelivery},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			kind, err := trip.StopKindFromString(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}

	t.Run("unknown_kind_is_rejected", func(t *testing.T) {
		_, err := trip.StopKindFromString("WAYPOINT")
		require.Error(t, err)
	})
}
