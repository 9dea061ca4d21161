package commands

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrUnassignOrderCommandIsNotConstructed = errors.New(
	"UnassignOrderCommand must be created via NewUnassignOrderCommand constructor",
)

// UnassignOrderCommand returns an assigned order to the unassigned pool,
// detaching all of its stops from the owning trip.
type UnassignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignOrderCommand creates a validated unassignment command.
func NewUnassignOrderCommand(orderID kernel.UUID) (UnassignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UnassignOrderCommand{}, err
	}

	return UnassignOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnassignOrderCommandIsNotConstructed)
}

// OrderID returns the order being unassigned.
func (c UnassignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
