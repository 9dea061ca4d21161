// Package queries contains the read-side operations of the coordination
// engine. Fetch responses are authoritative: each handler installs them into
// the local projection wholesale, discarding any optimistic patches, and
// compares the trip's route version against the persisted mark to surface
// externally-originated route changes.
package queries

import (
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
)

// Collaborator interfaces consumed by the query handlers.
type (
	// Projection is the slice of the local cache the query handlers refresh.
	Projection interface {
		Trip(tripID kernel.UUID) (*trip.Trip, bool)
		ReplaceTrip(t *trip.Trip)
		ReplaceTrips(trips []*trip.Trip)
		ReplaceOrders(orders []*order.Order)
	}

	// Publisher fans application events out to in-process subscribers.
	Publisher interface {
		Publish(e events.Event)
	}
)
