package trip

import (
	"fmt"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// Status represents the lifecycle state of a trip.
//
// State transitions driven from this client:
//
//	Scheduled ──> Accepted ──> InTransit ──> {Completed | Cancelled | Closed}
//
// Accepted means a vehicle is bound while the status label remains
// pending-start. Completed, Cancelled, and Closed are set by the server only;
// the client never infers a terminal trip status locally.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusScheduled is the initial status of a dispatched trip.
	StatusScheduled

	// StatusAccepted indicates the driver accepted the trip and bound a
	// vehicle. The trip has not started yet.
	StatusAccepted

	// StatusInTransit indicates the trip is being executed.
	StatusInTransit

	// StatusCompleted indicates all stops were finished. Terminal.
	StatusCompleted

	// StatusCancelled indicates the trip was cancelled by dispatch. Terminal.
	StatusCancelled

	// StatusClosed indicates the trip was administratively closed. Terminal.
	StatusClosed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusScheduled: "Scheduled",
		StatusAccepted:  "Accepted",
		StatusInTransit: "InTransit",
		StatusCompleted: "Completed",
		StatusCancelled: "Cancelled",
		StatusClosed:    "Closed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusScheduled: "Scheduled",
		StatusAccepted:  "Accepted",
		StatusInTransit: "InTransit",
		StatusCompleted: "Completed",
		StatusCancelled: "Cancelled",
		StatusClosed:    "Closed",
	}
}

// StatusFromString parses the backend's status label, case-sensitively, into
// a Status. Returns an error for unrecognized labels.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized trip status", s),
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

// String implements fmt.Stringer. Safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Scheduled -> Accepted
//
// Any other source status is rejected: a trip can only be accepted once,
// before execution begins.
func (s Status) Accept() (Status, error) {
	if s != StatusScheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return StatusAccepted, nil
}

// Start transitions the status to InTransit.
//
// Valid transitions:
//   - Accepted -> InTransit (vehicle bound)
//
// Starting is illegal from Scheduled (no vehicle bound yet), from InTransit
// (already started), and from any terminal status.
func (s Status) Start() (Status, error) {
	if s != StatusAccepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}
	return StatusInTransit, nil
}

// IsTerminal reports whether the status is final.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusClosed
}

// IsActive reports whether the trip is in execution, which is the condition
// for location tracking to run.
func (s Status) IsActive() bool {
	return s == StatusInTransit
}

// CanEditRoute reports whether structural route edits (reorder, move,
// assign, unassign) are allowed. Editing is blocked entirely once the trip
// is Closed or Cancelled.
func (s Status) CanEditRoute() bool {
	return s != StatusClosed && s != StatusCancelled
}
