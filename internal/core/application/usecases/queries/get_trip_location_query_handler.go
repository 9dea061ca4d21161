package queries

import (
	"context"
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// GetTripLocationQueryHandler fetches a trip's last reported position. When
// the backend has no trip-level location endpoint the handler falls back to
// the driver-level one, resolving the driver from the projected trip.
type GetTripLocationQueryHandler struct {
	gateway    ports.Gateway
	projection Projection
}

// NewGetTripLocationQueryHandler creates a handler for position fetches.
func NewGetTripLocationQueryHandler(gateway ports.Gateway, projection Projection) GetTripLocationQueryHandler {
	return GetTripLocationQueryHandler{
		gateway:    gateway,
		projection: projection,
	}
}

// Handle fetches the position. A nil location with a nil error means no
// position was reported yet.
func (h GetTripLocationQueryHandler) Handle(ctx context.Context, query GetTripLocationQuery) (*ports.TripLocation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loc, err := h.gateway.FetchTripLocation(ctx, query.TripID())
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, ports.ErrTripLocationUnsupported) {
		return nil, err
	}

	projected, ok := h.projection.Trip(query.TripID())
	if !ok {
		return nil, errs.NewObjectNotFoundError("tripId", query.TripID().String())
	}
	driverID := projected.DriverID()
	if driverID == nil {
		return nil, errs.NewObjectNotFoundError("driverId", query.TripID().String())
	}

	return h.gateway.FetchDriverLocation(ctx, *driverID)
}
