package trip

import (
	"errors"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

// ErrStopIsNotConstructed is returned when a Stop was not created through
// NewStop or RestoreStop.
var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop or RestoreStop")

// Address holds the human-readable location of a stop. The coordination
// engine treats it as opaque display data; only the backend geocodes it.
type Address struct {
	Line1      string
	City       string
	PostalCode string
}

// Stop is one pickup or delivery location within a trip. A stop belongs to
// exactly one trip at a time; its sequence number defines execution order and
// is unique within the trip.
type Stop struct {
	id        kernel.UUID
	sequence  int
	kind      StopKind
	address   Address
	plannedAt time.Time
	status    StopStatus
	orderID   *kernel.UUID
	pod       *ProofOfDelivery

	guard guard.ConstructorGuard
}

// NewStop creates a stop in Scheduled status. The sequence number must be
// positive.
func NewStop(id kernel.UUID, sequence int, kind StopKind, address Address, plannedAt time.Time) (*Stop, error) {
	return RestoreStop(id, sequence, kind, address, plannedAt, StopStatusScheduled, nil, nil)
}

// RestoreStop reconstructs a stop from an external representation, such as a
// backend trip payload. All invariants are re-validated.
func RestoreStop(
	id kernel.UUID,
	sequence int,
	kind StopKind,
	address Address,
	plannedAt time.Time,
	status StopStatus,
	orderID *kernel.UUID,
	pod *ProofOfDelivery,
) (*Stop, error) {
	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if sequence <= 0 {
		return nil, errs.NewValueIsInvalidError("sequence")
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}
	if pod != nil {
		if err := pod.Validate(); err != nil {
			return nil, err
		}
	}

	return &Stop{
		id:        id,
		sequence:  sequence,
		kind:      kind,
		address:   address,
		plannedAt: plannedAt,
		status:    status,
		orderID:   orderID,
		pod:       pod,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the stop was created through a constructor.
func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

// ID returns the stop identifier.
func (s *Stop) ID() kernel.UUID {
	return s.id
}

// Sequence returns the execution-order position within the trip.
func (s *Stop) Sequence() int {
	return s.sequence
}

// Kind returns whether this is a pickup or a delivery stop.
func (s *Stop) Kind() StopKind {
	return s.kind
}

// Address returns the stop's display address.
func (s *Stop) Address() Address {
	return s.address
}

// PlannedAt returns the planned service time.
func (s *Stop) PlannedAt() time.Time {
	return s.plannedAt
}

// Status returns the current stop status.
func (s *Stop) Status() StopStatus {
	return s.status
}

// OrderID returns the linked order id, or nil for stops synthesized without
// an order reference.
func (s *Stop) OrderID() *kernel.UUID {
	return s.orderID
}

// ProofOfDelivery returns the attached POD record, or nil.
func (s *Stop) ProofOfDelivery() *ProofOfDelivery {
	return s.pod
}

// IsTerminal reports whether the stop is Completed or Failed. Terminal stops
// are immutable with respect to ordering.
func (s *Stop) IsTerminal() bool {
	return s.status.IsTerminal()
}

// start, complete, and fail are invoked through the owning Trip so the
// aggregate can enforce next-stop ordering before any stop-level transition.

func (s *Stop) start() error {
	newStatus, err := s.status.Start()
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

func (s *Stop) complete(pod *ProofOfDelivery) error {
	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	// POD applies to delivery stops only; a payload handed in for a pickup
	// stop is ignored rather than rejected.
	if s.kind == StopKindDelivery && pod != nil {
		podCopy := *pod
		s.pod = &podCopy
	}
	return nil
}

func (s *Stop) fail() error {
	newStatus, err := s.status.Fail()
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

func (s *Stop) setSequence(sequence int) {
	s.sequence = sequence
}
