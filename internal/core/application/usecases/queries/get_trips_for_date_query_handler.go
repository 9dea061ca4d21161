package queries

import (
	"context"
	"log/slog"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
)

// GetTripsForDateQueryHandler fetches a day's trips and reconciles each one
// into the projection.
type GetTripsForDateQueryHandler struct {
	gateway   ports.Gateway
	reconcile reconciler
}

// NewGetTripsForDateQueryHandler creates a handler for trip-list fetches.
func NewGetTripsForDateQueryHandler(
	gateway ports.Gateway,
	projection Projection,
	marks ports.RouteVersionMarks,
	publisher Publisher,
	log *slog.Logger,
) GetTripsForDateQueryHandler {
	return GetTripsForDateQueryHandler{
		gateway: gateway,
		reconcile: reconciler{
			projection: projection,
			marks:      marks,
			publisher:  publisher,
			log:        log.With("component", "get_trips_for_date"),
		},
	}
}

// Handle fetches the trips and installs each one, surfacing external route
// changes per trip.
func (h GetTripsForDateQueryHandler) Handle(ctx context.Context, query GetTripsForDateQuery) ([]*trip.Trip, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trips, err := h.gateway.FetchTripsForDate(ctx, query.Date())
	if err != nil {
		return nil, err
	}

	for _, t := range trips {
		h.reconcile.install(ctx, t)
	}
	return trips, nil
}
