package commands

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrStartStopCommandIsNotConstructed = errors.New(
	"StartStopCommand must be created via NewStartStopCommand constructor",
)

// StartStopCommand marks the driver's arrival at a stop. Only the next
// pending stop of the trip may be started.
type StartStopCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	stopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartStopCommand creates a validated stop-start command.
func NewStartStopCommand(tripID, stopID kernel.UUID) (StartStopCommand, error) {
	if err := errors.Join(
		tripID.Validate(),
		stopID.Validate(),
	); err != nil {
		return StartStopCommand{}, err
	}

	return StartStopCommand{
		tripID: tripID,
		stopID: stopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartStopCommand) Validate() error {
	return c.guard.Validate(ErrStartStopCommandIsNotConstructed)
}

// TripID returns the owning trip.
func (c StartStopCommand) TripID() kernel.UUID {
	return c.tripID
}

// StopID returns the stop being started.
func (c StartStopCommand) StopID() kernel.UUID {
	return c.stopID
}
