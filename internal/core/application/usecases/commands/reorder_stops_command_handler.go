package commands

import (
	"context"
	"log/slog"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// ReorderStopsCommandHandler submits a route reorder. The submission is
// validated against the projection first, so a list that includes a terminal
// stop or misses a pending one fails without a network call.
type ReorderStopsCommandHandler struct {
	gateway    ports.Gateway
	projection Projection
	marks      ports.RouteVersionMarks
	log        *slog.Logger
}

// NewReorderStopsCommandHandler creates a handler for route reorders.
func NewReorderStopsCommandHandler(
	gateway ports.Gateway,
	projection Projection,
	marks ports.RouteVersionMarks,
	log *slog.Logger,
) ReorderStopsCommandHandler {
	return ReorderStopsCommandHandler{
		gateway:    gateway,
		projection: projection,
		marks:      marks,
		log:        log.With("component", "reorder_stops"),
	}
}

// Handle reorders the pending stops and installs the backend's updated trip.
// The version mark is advanced from the response: the bump was caused by this
// device, so it must not later be reported as an external route change.
func (h ReorderStopsCommandHandler) Handle(ctx context.Context, command ReorderStopsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	projected, ok := h.projection.Trip(command.TripID())
	if !ok {
		return errs.NewObjectNotFoundError("tripId", command.TripID().String())
	}
	if err := validateReorder(projected, command.OrderedStopIDs()); err != nil {
		return err
	}

	updated, err := h.gateway.ReorderStops(ctx, command.TripID(), command.OrderedStopIDs())
	if err != nil {
		return err
	}

	h.projection.ReplaceTrip(updated)
	if err := h.marks.Put(ctx, updated.ID(), updated.RouteVersion()); err != nil {
		h.log.Warn("persisting route version mark failed", "tripId", updated.ID(), "error", err)
	}
	return nil
}

// validateReorder checks a proposed ordering against the projected trip
// without mutating it, mirroring Trip.ReorderPending's rules.
func validateReorder(t *trip.Trip, orderedStopIDs []kernel.UUID) error {
	if !t.Status().CanEditRoute() {
		return trip.ErrRouteLocked
	}

	pending := t.PendingStops()
	if len(orderedStopIDs) != len(pending) {
		return trip.ErrReorderSetMismatch
	}

	pendingIDs := make(map[kernel.UUID]struct{}, len(pending))
	for _, s := range pending {
		pendingIDs[s.ID()] = struct{}{}
	}

	seen := make(map[kernel.UUID]struct{}, len(orderedStopIDs))
	for _, id := range orderedStopIDs {
		if _, dup := seen[id]; dup {
			return trip.ErrReorderSetMismatch
		}
		seen[id] = struct{}{}

		if _, ok := pendingIDs[id]; !ok {
			if s, err := t.StopByID(id); err == nil && s.IsTerminal() {
				return trip.ErrStopIsTerminal
			}
			return trip.ErrReorderSetMismatch
		}
	}
	return nil
}
