package commands

import (
	"context"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// FailStopCommandHandler submits a stop failure.
type FailStopCommandHandler struct {
	gateway    ports.Gateway
	projection Projection
}

// NewFailStopCommandHandler creates a handler for stop failures.
func NewFailStopCommandHandler(gateway ports.Gateway, projection Projection) FailStopCommandHandler {
	return FailStopCommandHandler{
		gateway:    gateway,
		projection: projection,
	}
}

// Handle fails the stop and applies the optimistic patch on success.
func (h FailStopCommandHandler) Handle(ctx context.Context, command FailStopCommand) error {
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
	if _, err := stop.Status().Fail(); err != nil {
		return err
	}

	if err := h.gateway.FailStop(ctx, command.StopID()); err != nil {
		return err
	}

	return h.projection.PatchTrip(kernel.NewUUID(), command.TripID(), func(t *trip.Trip) error {
		return t.FailStop(command.StopID())
	})
}
