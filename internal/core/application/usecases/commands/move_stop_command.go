package commands

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrMoveStopCommandIsNotConstructed = errors.New(
	"MoveStopCommand must be created via NewMoveStopCommand constructor",
)

// MoveStopCommand relocates a pending stop from one trip to another.
type MoveStopCommand struct { //nolint:recvcheck //using for validation
	stopID       kernel.UUID
	sourceTripID kernel.UUID
	targetTripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMoveStopCommand creates a validated move command. Source and target
// must be different trips.
func NewMoveStopCommand(stopID, sourceTripID, targetTripID kernel.UUID) (MoveStopCommand, error) {
	if err := errors.Join(
		stopID.Validate(),
		sourceTripID.Validate(),
		targetTripID.Validate(),
	); err != nil {
		return MoveStopCommand{}, err
	}
	if sourceTripID.IsEqual(targetTripID) {
		return MoveStopCommand{}, errs.NewValueIsInvalidError("targetTripId")
	}

	return MoveStopCommand{
		stopID:       stopID,
		sourceTripID: sourceTripID,
		targetTripID: targetTripID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveStopCommand) Validate() error {
	return c.guard.Validate(ErrMoveStopCommandIsNotConstructed)
}

// StopID returns the stop being relocated.
func (c MoveStopCommand) StopID() kernel.UUID {
	return c.stopID
}

// SourceTripID returns the trip the stop currently belongs to.
func (c MoveStopCommand) SourceTripID() kernel.UUID {
	return c.sourceTripID
}

// TargetTripID returns the trip the stop moves to.
func (c MoveStopCommand) TargetTripID() kernel.UUID {
	return c.targetTripID
}
