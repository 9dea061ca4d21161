package trip

import (
	"fmt"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// StopStatus represents the lifecycle state of a single stop.
//
//	Scheduled ──> InTransit ──> {Completed | Failed}
//
// Completed and Failed are both terminal; a Failed stop counts as done for
// next-stop ordering purposes.
type StopStatus int

const (
	// StopStatusUnknown represents an invalid or undefined stop status.
	StopStatusUnknown StopStatus = iota

	// StopStatusScheduled is the initial state of a stop on the route.
	StopStatusScheduled

	// StopStatusInTransit indicates the driver has started (arrived at)
	// the stop.
	StopStatusInTransit

	// StopStatusCompleted indicates the stop was finished. Terminal.
	StopStatusCompleted

	// StopStatusFailed indicates the stop could not be completed. Terminal.
	StopStatusFailed
)

func getStopStatusStrings() map[StopStatus]string {
	return map[StopStatus]string{
		StopStatusUnknown:   "Unknown",
		StopStatusScheduled: "Scheduled",
		StopStatusInTransit: "InTransit",
		StopStatusCompleted: "Completed",
		StopStatusFailed:    "Failed",
	}
}

func getValidStopStatusStrings() map[StopStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[StopStatus]string{
		StopStatusScheduled: "Scheduled",
		StopStatusInTransit: "InTransit",
		StopStatusCompleted: "Completed",
		StopStatusFailed:    "Failed",
	}
}

// StopStatusFromString parses the backend's stop status label.
func StopStatusFromString(s string) (StopStatus, error) {
	for status, str := range getValidStopStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StopStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"stopStatus",
		fmt.Errorf("%q is not a recognized stop status", s),
	)
}

// Validate checks that the StopStatus is one of the defined values.
func (s StopStatus) Validate() error {
	if _, ok := getValidStopStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"stopStatus",
			fmt.Errorf("%d is not a valid stop status", s),
		)
	}
	return nil
}

// String implements fmt.Stringer.
func (s StopStatus) String() string {
	if str, ok := getStopStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start transitions the status to InTransit. Legal only from Scheduled.
func (s StopStatus) Start() (StopStatus, error) {
	if s != StopStatusScheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stopStatus",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}
	return StopStatusInTransit, nil
}

// Complete transitions the status to Completed. Legal only from InTransit.
func (s StopStatus) Complete() (StopStatus, error) {
	if s != StopStatusInTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stopStatus",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return StopStatusCompleted, nil
}

// Fail transitions the status to Failed. Legal only from InTransit.
func (s StopStatus) Fail() (StopStatus, error) {
	if s != StopStatusInTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stopStatus",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}
	return StopStatusFailed, nil
}

// IsTerminal reports whether the stop reached a final state.
func (s StopStatus) IsTerminal() bool {
	return s == StopStatusCompleted || s == StopStatusFailed
}
