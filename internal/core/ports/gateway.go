package ports

import (
	"context"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
)

// TripLocation is the last known position of the vehicle executing a trip,
// as reported by the backend.
type TripLocation struct {
	Point      kernel.GeoPoint
	CapturedAt *time.Time
}

// Gateway is the transport collaborator: the dispatch backend's API as
// consumed by the coordination engine and tracking controller. The transport
// layer attaches bearer-token and tenant-scoping headers; implementations are
// asynchronous, non-blocking network calls and callers must not assume
// ordering between two in-flight operations.
type Gateway interface {
	// AcceptTrip binds a vehicle (and optional trailer) to the trip and
	// returns the updated trip.
	AcceptTrip(ctx context.Context, tripID kernel.UUID, vehicleID string, trailerID *string) (*trip.Trip, error)

	// StartTrip moves the trip to InTransit and returns the updated trip.
	StartTrip(ctx context.Context, tripID kernel.UUID) (*trip.Trip, error)

	// StartStop marks the stop as arrived/in-transit.
	StartStop(ctx context.Context, stopID kernel.UUID) error

	// CompleteStop finishes the stop, attaching the POD payload when present.
	CompleteStop(ctx context.Context, stopID kernel.UUID, pod *trip.ProofOfDelivery) error

	// FailStop marks the stop as failed.
	FailStop(ctx context.Context, stopID kernel.UUID) error

	// FetchTrip returns the authoritative trip, including routeVersion and
	// the full stop list.
	FetchTrip(ctx context.Context, tripID kernel.UUID) (*trip.Trip, error)

	// FetchTripsForDate returns the trips scheduled on the given date.
	FetchTripsForDate(ctx context.Context, date time.Time) ([]*trip.Trip, error)

	// FetchUnassignedOrders returns the unassigned order pool for the date.
	FetchUnassignedOrders(ctx context.Context, date time.Time) ([]*order.Order, error)

	// AcceptOrder assigns the order to the given trip, or to a new trip for
	// the current scheduling window when tripID is nil. Returns the owning
	// trip's id.
	AcceptOrder(ctx context.Context, orderID kernel.UUID, tripID *kernel.UUID) (kernel.UUID, error)

	// UnassignOrder detaches the order's stops from its trip entirely.
	UnassignOrder(ctx context.Context, orderID kernel.UUID) error

	// ReorderStops submits the complete desired ordering of the pending
	// stops. The server recomputes sequence numbers, increments routeVersion,
	// and returns the updated trip.
	ReorderStops(ctx context.Context, tripID kernel.UUID, stopIDsInOrder []kernel.UUID) (*trip.Trip, error)

	// MoveStop relocates one stop to a different trip's stop list.
	MoveStop(ctx context.Context, stopID kernel.UUID, targetTripID kernel.UUID) error

	// ReportLocation pushes one location sample. Best-effort, at-least-once;
	// callers absorb failures.
	ReportLocation(ctx context.Context, sample kernel.LocationSample) error

	// FetchTripLocation returns the trip's last reported position, nil when
	// none exists yet, or ErrTripLocationUnsupported when the backend does
	// not expose trip-level locations.
	FetchTripLocation(ctx context.Context, tripID kernel.UUID) (*TripLocation, error)

	// FetchDriverLocation is the fallback for backends without trip-level
	// locations.
	FetchDriverLocation(ctx context.Context, driverID kernel.UUID) (*TripLocation, error)
}
