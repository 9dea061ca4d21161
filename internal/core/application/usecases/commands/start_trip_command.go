package commands

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrStartTripCommandIsNotConstructed = errors.New(
	"StartTripCommand must be created via NewStartTripCommand constructor",
)

// StartTripCommand moves an accepted trip into transit. Starting a trip is
// what activates location tracking, via the TripActivated event.
type StartTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTripCommand creates a validated start command.
func NewStartTripCommand(tripID kernel.UUID) (StartTripCommand, error) {
	if err := tripID.Validate(); err != nil {
		return StartTripCommand{}, err
	}

	return StartTripCommand{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTripCommand) Validate() error {
	return c.guard.Validate(ErrStartTripCommandIsNotConstructed)
}

// TripID returns the trip being started.
func (c StartTripCommand) TripID() kernel.UUID {
	return c.tripID
}
