package commands

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrReorderStopsCommandIsNotConstructed = errors.New(
	"ReorderStopsCommand must be created via NewReorderStopsCommand constructor",
)

// ReorderStopsCommand submits a complete new ordering of a trip's pending
// stops. The list must contain each pending stop exactly once; the backend
// recomputes sequence numbers and bumps the trip's route version.
type ReorderStopsCommand struct { //nolint:recvcheck //using for validation
	tripID         kernel.UUID
	orderedStopIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewReorderStopsCommand creates a validated reorder command.
func NewReorderStopsCommand(tripID kernel.UUID, orderedStopIDs []kernel.UUID) (ReorderStopsCommand, error) {
	if err := tripID.Validate(); err != nil {
		return ReorderStopsCommand{}, err
	}
	if len(orderedStopIDs) == 0 {
		return ReorderStopsCommand{}, errs.NewValueIsRequiredError("orderedStopIds")
	}
	for _, id := range orderedStopIDs {
		if err := id.Validate(); err != nil {
			return ReorderStopsCommand{}, err
		}
	}

	ids := make([]kernel.UUID, len(orderedStopIDs))
	copy(ids, orderedStopIDs)

	return ReorderStopsCommand{
		tripID:         tripID,
		orderedStopIDs: ids,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderStopsCommand) Validate() error {
	return c.guard.Validate(ErrReorderStopsCommandIsNotConstructed)
}

// TripID returns the trip whose route is being reordered.
func (c ReorderStopsCommand) TripID() kernel.UUID {
	return c.tripID
}

// OrderedStopIDs returns the desired visiting order of the pending stops.
func (c ReorderStopsCommand) OrderedStopIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderedStopIDs))
	copy(ids, c.orderedStopIDs)
	return ids
}
