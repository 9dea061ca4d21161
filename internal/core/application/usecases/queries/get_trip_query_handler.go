package queries

import (
	"context"
	"log/slog"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
)

// GetTripQueryHandler fetches a trip and reconciles the projection with the
// response: external route changes and trip termination are published as
// events, the version mark advances, and any optimistic patches are
// discarded in favour of the authoritative copy.
type GetTripQueryHandler struct {
	gateway   ports.Gateway
	reconcile reconciler
}

// NewGetTripQueryHandler creates a handler for single-trip fetches.
func NewGetTripQueryHandler(
	gateway ports.Gateway,
	projection Projection,
	marks ports.RouteVersionMarks,
	publisher Publisher,
	log *slog.Logger,
) GetTripQueryHandler {
	return GetTripQueryHandler{
		gateway: gateway,
		reconcile: reconciler{
			projection: projection,
			marks:      marks,
			publisher:  publisher,
			log:        log.With("component", "get_trip"),
		},
	}
}

// Handle fetches the trip and installs it.
func (h GetTripQueryHandler) Handle(ctx context.Context, query GetTripQuery) (*trip.Trip, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.RefreshTrip(ctx, query.TripID())
}

// RefreshTrip fetches and installs the trip without requiring a query
// object. Command handlers use this as their resync fallback.
func (h GetTripQueryHandler) RefreshTrip(ctx context.Context, tripID kernel.UUID) (*trip.Trip, error) {
	fetched, err := h.gateway.FetchTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	h.reconcile.install(ctx, fetched)
	return fetched, nil
}
