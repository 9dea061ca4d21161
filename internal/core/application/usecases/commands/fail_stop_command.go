package commands

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrFailStopCommandIsNotConstructed = errors.New(
	"FailStopCommand must be created via NewFailStopCommand constructor",
)

// FailStopCommand records that a stop could not be completed, e.g. a closed
// delivery point or a refused pickup.
type FailStopCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	stopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFailStopCommand creates a validated stop-failure command.
func NewFailStopCommand(tripID, stopID kernel.UUID) (FailStopCommand, error) {
	if err := errors.Join(
		tripID.Validate(),
		stopID.Validate(),
	); err != nil {
		return FailStopCommand{}, err
	}

	return FailStopCommand{
		tripID: tripID,
		stopID: stopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FailStopCommand) Validate() error {
	return c.guard.Validate(ErrFailStopCommandIsNotConstructed)
}

// TripID returns the owning trip.
func (c FailStopCommand) TripID() kernel.UUID {
	return c.tripID
}

// StopID returns the stop being failed.
func (c FailStopCommand) StopID() kernel.UUID {
	return c.stopID
}
