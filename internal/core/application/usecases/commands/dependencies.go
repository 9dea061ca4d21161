// Package commands contains the write-side operations of the coordination
// engine. Every handler follows the same two-phase shape: pre-validate the
// transition against the local projection, submit it to the dispatch backend,
// then reconcile the projection (an optimistic patch, or wholesale replacement
// when the backend returns the updated trip).
package commands

import (
	"context"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
)

// Collaborator interfaces consumed by the command handlers. Declared here, on
// the consumer side, so handlers can be exercised against small fakes.
type (
	// Projection is the slice of the local cache the command handlers
	// reconcile after a successful backend call.
	Projection interface {
		Trip(tripID kernel.UUID) (*trip.Trip, bool)
		TripWithStopForOrder(orderID kernel.UUID) (*trip.Trip, bool)
		ReplaceTrip(t *trip.Trip)
		PatchTrip(opID, tripID kernel.UUID, patch func(*trip.Trip) error) error
		PatchOrder(opID, orderID kernel.UUID, patch func(*order.Order) error) error
		MoveStop(opID, stopID, sourceTripID, targetTripID kernel.UUID) error
	}

	// Publisher fans application events out to in-process subscribers.
	Publisher interface {
		Publish(e events.Event)
	}

	// TripRefresher re-fetches a trip from the backend and installs the
	// authoritative copy. Used as the resync fallback when the backend
	// reports an entity the projection still believes in.
	TripRefresher interface {
		RefreshTrip(ctx context.Context, tripID kernel.UUID) (*trip.Trip, error)
	}
)
