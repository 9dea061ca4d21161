package commands

import (
	"context"
	"log/slog"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
)

// AcceptTripCommandHandler submits trip acceptance to the dispatch backend.
// The transition is pre-validated against the projection, so a trip the
// client already knows cannot be accepted never reaches the network.
type AcceptTripCommandHandler struct {
	gateway    ports.Gateway
	projection Projection
	marks      ports.RouteVersionMarks
	log        *slog.Logger
}

// NewAcceptTripCommandHandler creates a handler for trip acceptance.
func NewAcceptTripCommandHandler(
	gateway ports.Gateway,
	projection Projection,
	marks ports.RouteVersionMarks,
	log *slog.Logger,
) AcceptTripCommandHandler {
	return AcceptTripCommandHandler{
		gateway:    gateway,
		projection: projection,
		marks:      marks,
		log:        log.With("component", "accept_trip"),
	}
}

// Handle accepts the trip and installs the backend's updated copy. The
// version mark is advanced from the response so the bump is recognised as
// self-caused rather than an external route change.
func (h AcceptTripCommandHandler) Handle(ctx context.Context, command AcceptTripCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if projected, ok := h.projection.Trip(command.TripID()); ok {
		if _, err := projected.Status().Accept(); err != nil {
			return err
		}
	}

	updated, err := h.gateway.AcceptTrip(ctx, command.TripID(), command.VehicleID(), command.TrailerID())
	if err != nil {
		return err
	}

	h.projection.ReplaceTrip(updated)
	if err := h.marks.Put(ctx, updated.ID(), updated.RouteVersion()); err != nil {
		h.log.Warn("persisting route version mark failed", "tripId", updated.ID(), "error", err)
	}
	return nil
}
