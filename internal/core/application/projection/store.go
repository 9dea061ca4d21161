// Package projection holds the locally cached trip/order projection and
// reconciles it after coordination operations.
//
// The cache is mutated by exactly two paths: authoritative refresh responses
// (wholesale replacement) and optimistic patches applied immediately after a
// successful coordination call. Patches are keyed by operation id and exist
// purely as a readability aid; the next authoritative refresh overwrites them
// without any field-level merge.
package projection

import (
	"sync"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// Store is the in-memory projection of trips and unassigned orders.
// Reads return the held aggregates; callers treat them as read-only and route
// every mutation through ReplaceTrip/ReplaceOrders or a Patch method.
type Store struct {
	mu     sync.RWMutex
	trips  map[kernel.UUID]*trip.Trip
	orders map[kernel.UUID]*order.Order

	// pendingTripOps tracks optimistic patches awaiting authoritative
	// refresh, per trip.
	pendingTripOps  map[kernel.UUID][]kernel.UUID
	pendingOrderOps map[kernel.UUID][]kernel.UUID
}

// NewStore creates an empty projection store.
func NewStore() *Store {
	return &Store{
		trips:           make(map[kernel.UUID]*trip.Trip),
		orders:          make(map[kernel.UUID]*order.Order),
		pendingTripOps:  make(map[kernel.UUID][]kernel.UUID),
		pendingOrderOps: make(map[kernel.UUID][]kernel.UUID),
	}
}

// ReplaceTrip installs an authoritative trip, discarding any optimistic
// patches recorded against it.
func (s *Store) ReplaceTrip(t *trip.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips[t.ID()] = t
	delete(s.pendingTripOps, t.ID())
}

// ReplaceTrips installs a batch of authoritative trips.
func (s *Store) ReplaceTrips(trips []*trip.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range trips {
		s.trips[t.ID()] = t
		delete(s.pendingTripOps, t.ID())
	}
}

// ReplaceOrders replaces the whole unassigned-order pool.
func (s *Store) ReplaceOrders(orders []*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make(map[kernel.UUID]*order.Order, len(orders))
	s.pendingOrderOps = make(map[kernel.UUID][]kernel.UUID)
	for _, o := range orders {
		s.orders[o.ID()] = o
	}
}

// Trip returns the projected trip, if held.
func (s *Store) Trip(tripID kernel.UUID) (*trip.Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trips[tripID]
	return t, ok
}

// Trips returns all projected trips, in no particular order.
func (s *Store) Trips() []*trip.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*trip.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, t)
	}
	return out
}

// Order returns the projected order, if held.
func (s *Store) Order(orderID kernel.UUID) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[orderID]
	return o, ok
}

// Orders returns all projected orders, in no particular order.
func (s *Store) Orders() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out
}

// TripContainingStop finds the projected trip currently owning the stop.
func (s *Store) TripContainingStop(stopID kernel.UUID) (*trip.Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trips {
		if _, err := t.StopByID(stopID); err == nil {
			return t, true
		}
	}
	return nil, false
}

// TripWithStopForOrder finds the projected trip holding a stop linked to the
// order.
func (s *Store) TripWithStopForOrder(orderID kernel.UUID) (*trip.Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trips {
		if _, err := t.StopByOrder(orderID); err == nil {
			return t, true
		}
	}
	return nil, false
}

// HasPendingOps reports whether optimistic patches are awaiting refresh for
// the trip.
func (s *Store) HasPendingOps(tripID kernel.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pendingTripOps[tripID]) > 0
}

// PatchTrip applies an optimistic mutation to a projected trip, recording the
// operation id so the patch is identifiable until the next refresh. The patch
// function must only use the aggregate's own mutating methods; if it fails
// the projection is left untouched and no op is recorded.
func (s *Store) PatchTrip(opID, tripID kernel.UUID, patch func(*trip.Trip) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trips[tripID]
	if !ok {
		return errs.NewObjectNotFoundError("tripId", tripID.String())
	}
	if err := patch(t); err != nil {
		return err
	}

	s.pendingTripOps[tripID] = append(s.pendingTripOps[tripID], opID)
	return nil
}

// PatchOrder applies an optimistic mutation to a projected order.
func (s *Store) PatchOrder(opID, orderID kernel.UUID, patch func(*order.Order) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return errs.NewObjectNotFoundError("orderId", orderID.String())
	}
	if err := patch(o); err != nil {
		return err
	}

	s.pendingOrderOps[orderID] = append(s.pendingOrderOps[orderID], opID)
	return nil
}

// MoveStop applies the optimistic patch of a cross-trip move under one lock:
// the stop leaves the source trip's projection and lands as a placeholder at
// the end of the target trip's, pending authoritative refresh. On any failure
// both projections are left unchanged.
func (s *Store) MoveStop(opID, stopID, sourceTripID, targetTripID kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.trips[sourceTripID]
	if !ok {
		return errs.NewObjectNotFoundError("tripId", sourceTripID.String())
	}
	target, ok := s.trips[targetTripID]
	if !ok {
		return errs.NewObjectNotFoundError("tripId", targetTripID.String())
	}

	// Validate the target accepts edits before mutating the source, so a
	// locked target cannot leave the stop detached.
	if !target.Status().CanEditRoute() {
		return trip.ErrRouteLocked
	}

	moved, err := source.RemoveStop(stopID)
	if err != nil {
		return err
	}
	if err := target.AppendStop(moved); err != nil {
		// Undo the removal; AppendStop only fails on validation, so the
		// stop is still intact.
		_ = source.AppendStop(moved)
		return err
	}

	s.pendingTripOps[sourceTripID] = append(s.pendingTripOps[sourceTripID], opID)
	s.pendingTripOps[targetTripID] = append(s.pendingTripOps[targetTripID], opID)
	return nil
}
