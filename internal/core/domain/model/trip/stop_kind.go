package trip

import (
	"fmt"
	"strings"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// StopKind distinguishes pickup from delivery stops. Proof-of-delivery
// payloads only apply to delivery stops.
type StopKind int

const (
	// StopKindUnknown represents an invalid or undefined kind.
	StopKindUnknown StopKind = iota

	// StopKindPickup is a collection stop.
	StopKindPickup

	// StopKindDelivery is a drop-off stop.
	StopKindDelivery
)

func getStopKindStrings() map[StopKind]string {
	return map[StopKind]string{
		StopKindUnknown:  "UNKNOWN",
		StopKindPickup:   "PICKUP",
		StopKindDelivery: "DELIVERY",
	}
}

// StopKindFromString parses the backend's stop type label, case-insensitively.
func StopKindFromString(s string) (StopKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PICKUP":
		return StopKindPickup, nil
	case "DELIVERY":
		return StopKindDelivery, nil
	default:
		return StopKindUnknown, errs.NewValueIsInvalidErrorWithCause(
			"stopKind",
			fmt.Errorf("%q is not a recognized stop type", s),
		)
	}
}

// Validate checks that the StopKind is Pickup or Delivery.
func (k StopKind) Validate() error {
	if k != StopKindPickup && k != StopKindDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"stopKind",
			fmt.Errorf("%d is not a valid stop kind", k),
		)
	}
	return nil
}

// String implements fmt.Stringer using the backend's uppercase labels.
func (k StopKind) String() string {
	if str, ok := getStopKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}
