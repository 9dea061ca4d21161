package commands

import (
	"context"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// MoveStopCommandHandler submits a cross-trip stop move. Moving a terminal
// stop is rejected locally with ErrStopIsTerminal, leaving both trips'
// projections untouched and issuing no network call.
type MoveStopCommandHandler struct {
	gateway    ports.Gateway
	projection Projection
}

// NewMoveStopCommandHandler creates a handler for cross-trip stop moves.
func NewMoveStopCommandHandler(gateway ports.Gateway, projection Projection) MoveStopCommandHandler {
	return MoveStopCommandHandler{
		gateway:    gateway,
		projection: projection,
	}
}

// Handle moves the stop and applies the two-sided optimistic patch on
// success.
func (h MoveStopCommandHandler) Handle(ctx context.Context, command MoveStopCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	source, ok := h.projection.Trip(command.SourceTripID())
	if !ok {
		return errs.NewObjectNotFoundError("tripId", command.SourceTripID().String())
	}
	stop, err := source.StopByID(command.StopID())
	if err != nil {
		return err
	}
	if stop.IsTerminal() {
		return trip.ErrStopIsTerminal
	}
	if target, ok := h.projection.Trip(command.TargetTripID()); ok && !target.Status().CanEditRoute() {
		return trip.ErrRouteLocked
	}

	if err := h.gateway.MoveStop(ctx, command.StopID(), command.TargetTripID()); err != nil {
		return err
	}

	return h.projection.MoveStop(
		kernel.NewUUID(),
		command.StopID(),
		command.SourceTripID(),
		command.TargetTripID(),
	)
}
