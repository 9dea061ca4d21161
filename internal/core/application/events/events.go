// Package events carries the domain notifications exchanged between the
// coordination engine, the tracking controller, and the presentation layer.
// The Bus replaces ambient module-level listener arrays with an explicit
// publish-subscribe channel owned by the composition root.
package events

import (
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
)

// Event is a domain notification. Implementations are immutable value types.
type Event interface {
	EventName() string
}

// TripActivated is published when a trip enters execution. The tracking
// controller starts foreground watching and background reporting on it.
type TripActivated struct {
	TripID kernel.UUID
}

// EventName implements Event.
func (TripActivated) EventName() string { return "TripActivated" }

// TripTerminated is published when a trip reaches a terminal status. The
// tracking controller stops on it.
type TripTerminated struct {
	TripID kernel.UUID
	Status trip.Status
}

// EventName implements Event.
func (TripTerminated) EventName() string { return "TripTerminated" }

// RouteChangedExternally is published when a fetched trip carries a
// routeVersion strictly greater than the locally stored mark. Informational
// and non-blocking: it never prevents further local edits.
type RouteChangedExternally struct {
	TripID        kernel.UUID
	KnownVersion  int64
	ServerVersion int64
}

// EventName implements Event.
func (RouteChangedExternally) EventName() string { return "RouteChangedExternally" }
