package commands

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrCompleteStopCommandIsNotConstructed = errors.New(
	"CompleteStopCommand must be created via NewCompleteStopCommand constructor",
)

// CompleteStopCommand finishes a stop the driver has arrived at. Delivery
// stops may carry a proof-of-delivery payload; pickups never do.
type CompleteStopCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	stopID kernel.UUID
	pod    *trip.ProofOfDelivery

	guard guard.ConstructorGuard
}

// NewCompleteStopCommand creates a validated completion command. The POD is
// optional; when present it must be a constructed ProofOfDelivery.
func NewCompleteStopCommand(tripID, stopID kernel.UUID, pod *trip.ProofOfDelivery) (CompleteStopCommand, error) {
	if err := errors.Join(
		tripID.Validate(),
		stopID.Validate(),
	); err != nil {
		return CompleteStopCommand{}, err
	}
	if pod != nil {
		if err := pod.Validate(); err != nil {
			return CompleteStopCommand{}, err
		}
	}

	return CompleteStopCommand{
		tripID: tripID,
		stopID: stopID,
		pod:    pod,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteStopCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStopCommandIsNotConstructed)
}

// TripID returns the owning trip.
func (c CompleteStopCommand) TripID() kernel.UUID {
	return c.tripID
}

// StopID returns the stop being completed.
func (c CompleteStopCommand) StopID() kernel.UUID {
	return c.stopID
}

// ProofOfDelivery returns the attached POD payload, or nil.
func (c CompleteStopCommand) ProofOfDelivery() *trip.ProofOfDelivery {
	return c.pod
}
