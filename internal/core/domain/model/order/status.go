package order

import (
	"fmt"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// Status is the assignment lifecycle flag of an order.
//
//	Unassigned <──> Assigned
//
// Reassignment to a different trip keeps the order Assigned; unassigning
// returns it to the pool.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusUnassigned means the order has no trip and sits in the
	// unassigned pool.
	StatusUnassigned

	// StatusAssigned means the order's stops belong to a trip.
	StatusAssigned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusUnassigned: "Unassigned",
		StatusAssigned:   "Assigned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusUnassigned: "Unassigned",
		StatusAssigned:   "Assigned",
	}
}

// StatusFromString parses the backend's order status label.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized order status", s),
	)
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveTrip enforces consistency between status and trip linkage:
// assigned orders must reference a trip, unassigned orders must not.
func (s Status) ValidateCanHaveTrip(hasTrip bool) error {
	if hasTrip && s != StatusAssigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a trip", s.String()),
		)
	}
	if !hasTrip && s == StatusAssigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no trip", s.String()),
		)
	}
	return nil
}

// Assign transitions the status to Assigned. Reassignment is allowed.
func (s Status) Assign() (Status, error) {
	if s != StatusUnassigned && s != StatusAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return StatusAssigned, nil
}

// Unassign transitions the status back to Unassigned.
func (s Status) Unassign() (Status, error) {
	if s != StatusAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to unassign", s.String()),
		)
	}
	return StatusUnassigned, nil
}
