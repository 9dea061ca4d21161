package commands

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrAcceptTripCommandIsNotConstructed = errors.New(
	"AcceptTripCommand must be created via NewAcceptTripCommand constructor",
)

// AcceptTripCommand binds a vehicle (and optionally a trailer) to a scheduled
// trip, committing the driver to execute it.
//
// Example:
//
//	cmd, err := NewAcceptTripCommand(tripID, "SGX-1234", nil)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AcceptTripCommand struct { //nolint:recvcheck //using for validation
	tripID    kernel.UUID
	vehicleID string
	trailerID *string

	guard guard.ConstructorGuard
}

// NewAcceptTripCommand creates a validated accept command. The vehicle
// identifier is required; the trailer is optional.
func NewAcceptTripCommand(tripID kernel.UUID, vehicleID string, trailerID *string) (AcceptTripCommand, error) {
	cmd := AcceptTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return AcceptTripCommand{}, err
	}

	cmd.trailerID = trailerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptTripCommand) Validate() error {
	return c.guard.Validate(ErrAcceptTripCommandIsNotConstructed)
}

// TripID returns the trip being accepted.
func (c AcceptTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// VehicleID returns the vehicle registration bound to the trip.
func (c AcceptTripCommand) VehicleID() string {
	return c.vehicleID
}

// TrailerID returns the optional trailer registration.
func (c AcceptTripCommand) TrailerID() *string {
	return c.trailerID
}

func (c *AcceptTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *AcceptTripCommand) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleId")
	}

	c.vehicleID = vehicleID
	return nil
}
