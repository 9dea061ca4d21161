package commands

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand accepts an unassigned order onto a trip. When no trip
// is given, the backend creates one for the current scheduling window.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, &tripID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrAssignAlreadyInProgress) {
//	    // a previous tap on the same order is still in flight
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	tripID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a validated assignment command.
func NewAssignOrderCommand(orderID kernel.UUID, tripID *kernel.UUID) (AssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}
	if tripID != nil {
		if err := tripID.Validate(); err != nil {
			return AssignOrderCommand{}, err
		}
	}

	return AssignOrderCommand{
		orderID: orderID,
		tripID:  tripID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order being assigned.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TripID returns the target trip, or nil for backend-chosen placement.
func (c AssignOrderCommand) TripID() *kernel.UUID {
	return c.tripID
}
