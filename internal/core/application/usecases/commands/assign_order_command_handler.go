package commands

import (
	"context"
	"log/slog"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
)

// AssignOrderCommandHandler submits order acceptance under single-flight
// protection: while one assignment for an order is in flight, any further
// submission for the same order fails with ErrAssignAlreadyInProgress
// without touching the network.
type AssignOrderCommandHandler struct {
	gateway    ports.Gateway
	projection Projection
	inflight   *InflightOrders
	refresher  TripRefresher
	log        *slog.Logger
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(
	gateway ports.Gateway,
	projection Projection,
	inflight *InflightOrders,
	refresher TripRefresher,
	log *slog.Logger,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		gateway:    gateway,
		projection: projection,
		inflight:   inflight,
		refresher:  refresher,
		log:        log.With("component", "assign_order"),
	}
}

// Handle accepts the order onto its trip. On success the order is patched
// out of the unassigned pool and the owning trip is re-fetched so its new
// stops appear; the single-flight claim is held until both are done.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.inflight.Begin(command.OrderID()); err != nil {
		return err
	}
	defer h.inflight.End(command.OrderID())

	tripID, err := h.gateway.AcceptOrder(ctx, command.OrderID(), command.TripID())
	if err != nil {
		return err
	}

	if err := h.projection.PatchOrder(kernel.NewUUID(), command.OrderID(), func(o *order.Order) error {
		return o.Assign(tripID)
	}); err != nil {
		// The pool may simply not hold the order on this device; the trip
		// refresh below still converges the projection.
		h.log.Warn("optimistic order patch failed", "orderId", command.OrderID(), "error", err)
	}

	if _, err := h.refresher.RefreshTrip(ctx, tripID); err != nil {
		h.log.Warn("refreshing trip after assignment failed", "tripId", tripID, "error", err)
	}
	return nil
}
