package events_test

import (
	"testing"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishDeliversToAllSubscribers(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	var first, second []events.Event
	bus.Subscribe(func(e events.Event) { first = append(first, e) })
	bus.Subscribe(func(e events.Event) { second = append(second, e) })

	evt := events.TripActivated{TripID: kernel.NewUUID()}
	bus.Publish(evt)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, evt, first[0])
	assert.Equal(t, "TripActivated", first[0].EventName())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	var got []events.Event
	unsubscribe := bus.Subscribe(func(e events.Event) { got = append(got, e) })

	bus.Publish(events.TripActivated{TripID: kernel.NewUUID()})
	unsubscribe()
	bus.Publish(events.TripTerminated{TripID: kernel.NewUUID(), Status: trip.StatusCompleted})

	assert.Len(t, got, 1)
}

func TestBus_PublishAfterCloseIsNoOp(t *testing.T) {
	bus := events.NewBus()

	var got []events.Event
	bus.Subscribe(func(e events.Event) { got = append(got, e) })
	bus.Close()

	bus.Publish(events.RouteChangedExternally{
		TripID:        kernel.NewUUID(),
		KnownVersion:  2,
		ServerVersion: 3,
	})

	assert.Empty(t, got)
}
