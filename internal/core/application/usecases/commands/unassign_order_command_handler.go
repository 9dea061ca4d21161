package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// UnassignOrderCommandHandler submits order unassignment under the same
// single-flight protection as assignment. An order whose stop has already
// been completed or failed cannot leave the trip.
type UnassignOrderCommandHandler struct {
	gateway    ports.Gateway
	projection Projection
	inflight   *InflightOrders
	refresher  TripRefresher
	log        *slog.Logger
}

// NewUnassignOrderCommandHandler creates a handler for order unassignment.
func NewUnassignOrderCommandHandler(
	gateway ports.Gateway,
	projection Projection,
	inflight *InflightOrders,
	refresher TripRefresher,
	log *slog.Logger,
) UnassignOrderCommandHandler {
	return UnassignOrderCommandHandler{
		gateway:    gateway,
		projection: projection,
		inflight:   inflight,
		refresher:  refresher,
		log:        log.With("component", "unassign_order"),
	}
}

// Handle unassigns the order and detaches its stops from the projected trip.
// When the backend no longer knows the order, the projection is stale: the
// owning trip is re-fetched to resync before the not-found error is
// surfaced.
func (h UnassignOrderCommandHandler) Handle(ctx context.Context, command UnassignOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.inflight.Begin(command.OrderID()); err != nil {
		return err
	}
	defer h.inflight.End(command.OrderID())

	owning, ok := h.projection.TripWithStopForOrder(command.OrderID())
	if ok {
		stop, err := owning.StopByOrder(command.OrderID())
		if err != nil {
			return err
		}
		if stop.IsTerminal() {
			return trip.ErrStopIsTerminal
		}
	}

	if err := h.gateway.UnassignOrder(ctx, command.OrderID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) && ok {
			if _, refreshErr := h.refresher.RefreshTrip(ctx, owning.ID()); refreshErr != nil {
				h.log.Warn("resync after stale unassign failed", "tripId", owning.ID(), "error", refreshErr)
			}
		}
		return err
	}

	if !ok {
		return nil
	}

	return h.projection.PatchTrip(kernel.NewUUID(), owning.ID(), func(t *trip.Trip) error {
		// An order can contribute more than one stop (pickup + delivery).
		removed := false
		for {
			stop, err := t.StopByOrder(command.OrderID())
			if err != nil {
				if removed {
					return nil
				}
				return err
			}
			if _, err := t.RemoveStop(stop.ID()); err != nil {
				return err
			}
			removed = true
		}
	})
}
