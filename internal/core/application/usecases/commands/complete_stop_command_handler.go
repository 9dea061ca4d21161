package commands

import (
	"context"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// CompleteStopCommandHandler submits a stop completion. The stop must be
// in transit already; the backend decides whether completing the last stop
// also completes the trip.
type CompleteStopCommandHandler struct {
	gateway    ports.Gateway
	projection Projection
}

// NewCompleteStopCommandHandler creates a handler for stop completions.
func NewCompleteStopCommandHandler(gateway ports.Gateway, projection Projection) CompleteStopCommandHandler {
	return CompleteStopCommandHandler{
		gateway:    gateway,
		projection: projection,
	}
}

// Handle completes the stop and applies the optimistic patch on success.
func (h CompleteStopCommandHandler) Handle(ctx context.Context, command CompleteStopCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	projected, ok := h.projection.Trip(command.TripID())
	if !ok {
		return errs.NewObjectNotFoundError("tripId", command.TripID().String())
	}
	stop, err := projected.StopByID(command.StopID())
	if err != nil {
		return err
	}
	if _, err := stop.Status().Complete(); err != nil {
		return err
	}

	if err := h.gateway.CompleteStop(ctx, command.StopID(), command.ProofOfDelivery()); err != nil {
		return err
	}

	return h.projection.PatchTrip(kernel.NewUUID(), command.TripID(), func(t *trip.Trip) error {
		return t.CompleteStop(command.StopID(), command.ProofOfDelivery())
	})
}
