package order

import (
	"errors"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// StopTemplate describes a stop an order will contribute to a trip once
// accepted. Templates carry no status or sequence; those exist only on the
// trip's Stop entities.
type StopTemplate struct {
	Kind      trip.StopKind
	Address   trip.Address
	PlannedAt time.Time
}

// Order is a customer request that, once accepted, contributes one or more
// stops to a trip. The client holds a read-mostly projection; assignment
// state is owned by the backend.
type Order struct {
	id           kernel.UUID
	customerName string
	stops        []StopTemplate
	status       Status
	tripID       *kernel.UUID

	isConstructed bool
}

// NewOrder creates an unassigned order with at least one stop template.
func NewOrder(id kernel.UUID, customerName string, stops []StopTemplate) (*Order, error) {
	return RestoreOrder(id, customerName, stops, StatusUnassigned, nil)
}

// RestoreOrder reconstructs an order from an external representation,
// re-validating the status/trip consistency rule.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	stops []StopTemplate,
	status Status,
	tripID *kernel.UUID,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		status.ValidateCanHaveTrip(tripID != nil),
	); err != nil {
		return nil, err
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if len(stops) == 0 {
		return nil, errs.NewValueIsRequiredError("stops")
	}
	for _, s := range stops {
		if err := s.Kind.Validate(); err != nil {
			return nil, err
		}
	}
	if tripID != nil {
		if err := tripID.Validate(); err != nil {
			return nil, err
		}
	}

	templates := make([]StopTemplate, len(stops))
	copy(templates, stops)

	return &Order{
		id:            id,
		customerName:  customerName,
		stops:         templates,
		status:        status,
		tripID:        tripID,
		isConstructed: true,
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the ordering customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Stops returns the order's stop templates.
func (o *Order) Stops() []StopTemplate {
	out := make([]StopTemplate, len(o.stops))
	copy(out, o.stops)
	return out
}

// Status returns the assignment lifecycle flag.
func (o *Order) Status() Status {
	return o.status
}

// TripID returns the owning trip's id, or nil while unassigned.
func (o *Order) TripID() *kernel.UUID {
	return o.tripID
}

// Assign marks the order as belonging to the given trip. This is the
// optimistic patch applied after a successful acceptOrder call.
func (o *Order) Assign(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.tripID = &tripID
	return nil
}

// Unassign returns the order to the unassigned pool. This is the optimistic
// patch applied after a successful unassignOrder call.
func (o *Order) Unassign() error {
	newStatus, err := o.status.Unassign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.tripID = nil
	return nil
}
