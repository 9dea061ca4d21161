package commands

import (
	"context"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// StartStopCommandHandler submits a stop arrival. Next-stop ordering is
// enforced locally first: an out-of-order tap fails with ErrStopOutOfOrder
// and issues no network call.
type StartStopCommandHandler struct {
	gateway    ports.Gateway
	projection Projection
}

// NewStartStopCommandHandler creates a handler for stop arrivals.
func NewStartStopCommandHandler(gateway ports.Gateway, projection Projection) StartStopCommandHandler {
	return StartStopCommandHandler{
		gateway:    gateway,
		projection: projection,
	}
}

// Handle starts the stop and applies the optimistic patch on success.
func (h StartStopCommandHandler) Handle(ctx context.Context, command StartStopCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	projected, ok := h.projection.Trip(command.TripID())
	if !ok {
		return errs.NewObjectNotFoundError("tripId", command.TripID().String())
	}
	if next := projected.NextStop(); next == nil {
		return trip.ErrNoPendingStops
	} else if !next.ID().IsEqual(command.StopID()) {
		return trip.ErrStopOutOfOrder
	}

	if err := h.gateway.StartStop(ctx, command.StopID()); err != nil {
		return err
	}

	return h.projection.PatchTrip(kernel.NewUUID(), command.TripID(), func(t *trip.Trip) error {
		return t.StartStop(command.StopID())
	})
}
