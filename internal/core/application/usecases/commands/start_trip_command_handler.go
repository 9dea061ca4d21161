package commands

import (
	"context"
	"log/slog"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
)

// StartTripCommandHandler submits the transition to InTransit and announces
// the activation so the tracking controller can begin reporting.
type StartTripCommandHandler struct {
	gateway    ports.Gateway
	projection Projection
	marks      ports.RouteVersionMarks
	publisher  Publisher
	log        *slog.Logger
}

// NewStartTripCommandHandler creates a handler for starting trips.
func NewStartTripCommandHandler(
	gateway ports.Gateway,
	projection Projection,
	marks ports.RouteVersionMarks,
	publisher Publisher,
	log *slog.Logger,
) StartTripCommandHandler {
	return StartTripCommandHandler{
		gateway:    gateway,
		projection: projection,
		marks:      marks,
		publisher:  publisher,
		log:        log.With("component", "start_trip"),
	}
}

// Handle starts the trip, installs the backend's updated copy, and publishes
// TripActivated. The event fires only after the backend confirms, so tracking
// never starts for a trip the backend refused to start.
func (h StartTripCommandHandler) Handle(ctx context.Context, command StartTripCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if projected, ok := h.projection.Trip(command.TripID()); ok {
		if _, err := projected.Status().Start(); err != nil {
			return err
		}
	}

	updated, err := h.gateway.StartTrip(ctx, command.TripID())
	if err != nil {
		return err
	}

	h.projection.ReplaceTrip(updated)
	if err := h.marks.Put(ctx, updated.ID(), updated.RouteVersion()); err != nil {
		h.log.Warn("persisting route version mark failed", "tripId", updated.ID(), "error", err)
	}

	h.publisher.Publish(events.TripActivated{TripID: updated.ID()})
	return nil
}
