package trip

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip was not created through
	// NewTrip or RestoreTrip.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip or RestoreTrip")

	// ErrStopOutOfOrder is returned when a stop other than the next pending
	// stop is started. Policy violation; never retried.
	ErrStopOutOfOrder = errors.New("stop is not the next pending stop")

	// ErrStopIsTerminal is returned when a completed or failed stop is
	// reordered, moved, or unassigned.
	ErrStopIsTerminal = errors.New("stop is terminal and cannot be reordered, moved, or unassigned")

	// ErrRouteLocked is returned when a structural edit is attempted on a
	// closed or cancelled trip.
	ErrRouteLocked = errors.New("route is immutable once the trip is closed or cancelled")

	// ErrReorderSetMismatch is returned when a reorder submission does not
	// list exactly the pending stops of the trip.
	ErrReorderSetMismatch = errors.New("reorder must list each pending stop exactly once")

	// ErrNoPendingStops is returned when a stop-level action is requested but
	// every stop is already terminal.
	ErrNoPendingStops = errors.New("trip has no pending stops")
)

// Trip is the aggregate root for a driver's ordered collection of stops.
//
// Invariants maintained here:
//   - Stop sequence numbers form a dense, strictly ascending run.
//   - Terminal stops always order after pending stops.
//   - Only the next pending stop (lowest sequence among non-terminal stops)
//     can be started.
//   - No structural edit is possible once the trip is Closed or Cancelled.
type Trip struct {
	id           kernel.UUID
	status       Status
	plannedStart time.Time
	plannedEnd   time.Time
	driverID     *kernel.UUID
	vehicleID    string
	trailerID    *string
	stops        []*Stop
	routeVersion int64

	isConstructed bool
}

// NewTrip creates a trip in Scheduled status with no stops.
func NewTrip(id kernel.UUID, plannedStart, plannedEnd time.Time) (*Trip, error) {
	return RestoreTrip(id, StatusScheduled, plannedStart, plannedEnd, nil, "", nil, nil, 0)
}

// RestoreTrip reconstructs a trip from an external representation. Stops are
// re-sorted by sequence and sequence uniqueness is enforced.
func RestoreTrip(
	id kernel.UUID,
	status Status,
	plannedStart, plannedEnd time.Time,
	driverID *kernel.UUID,
	vehicleID string,
	trailerID *string,
	stops []*Stop,
	routeVersion int64,
) (*Trip, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if routeVersion < 0 {
		return nil, errs.NewValueIsInvalidError("routeVersion")
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	sorted := make([]*Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sequence() < sorted[j].Sequence()
	})

	seen := make(map[int]struct{}, len(sorted))
	for _, s := range sorted {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[s.Sequence()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"sequence",
				fmt.Errorf("sequence %d appears more than once", s.Sequence()),
			)
		}
		seen[s.Sequence()] = struct{}{}
	}

	return &Trip{
		id:            id,
		status:        status,
		plannedStart:  plannedStart,
		plannedEnd:    plannedEnd,
		driverID:      driverID,
		vehicleID:     vehicleID,
		trailerID:     trailerID,
		stops:         sorted,
		routeVersion:  routeVersion,
		isConstructed: true,
	}, nil
}

// Validate ensures the trip was created through a constructor.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

// ID returns the trip identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// Status returns the current trip status.
func (t *Trip) Status() Status {
	return t.status
}

// PlannedStart returns the planned start timestamp.
func (t *Trip) PlannedStart() time.Time {
	return t.plannedStart
}

// PlannedEnd returns the planned end timestamp.
func (t *Trip) PlannedEnd() time.Time {
	return t.plannedEnd
}

// DriverID returns the assigned driver id, or nil if unassigned.
func (t *Trip) DriverID() *kernel.UUID {
	return t.driverID
}

// VehicleID returns the bound vehicle identifier, empty until acceptance.
func (t *Trip) VehicleID() string {
	return t.vehicleID
}

// TrailerID returns the optional trailer identifier.
func (t *Trip) TrailerID() *string {
	return t.trailerID
}

// RouteVersion returns the last routeVersion observed from the server.
func (t *Trip) RouteVersion() int64 {
	return t.routeVersion
}

// Stops returns the stops in execution order. The returned slice is a copy;
// the stops themselves are shared.
func (t *Trip) Stops() []*Stop {
	out := make([]*Stop, len(t.stops))
	copy(out, t.stops)
	return out
}

// PendingStops returns the non-terminal stops in execution order.
func (t *Trip) PendingStops() []*Stop {
	var out []*Stop
	for _, s := range t.stops {
		if !s.IsTerminal() {
			out = append(out, s)
		}
	}
	return out
}

// StopByID returns the stop with the given id.
func (t *Trip) StopByID(stopID kernel.UUID) (*Stop, error) {
	for _, s := range t.stops {
		if s.ID().IsEqual(stopID) {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("stopId", stopID.String())
}

// StopByOrder returns the stop linked to the given order id, or an
// ObjectNotFoundError when the order contributed no stop to this trip.
func (t *Trip) StopByOrder(orderID kernel.UUID) (*Stop, error) {
	for _, s := range t.stops {
		if s.OrderID() != nil && s.OrderID().IsEqual(orderID) {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
}

// NextStop returns the stop with the lowest sequence number among
// non-terminal stops, or nil when every stop is terminal. This is the only
// stop that may legally be started.
func (t *Trip) NextStop() *Stop {
	var next *Stop
	for _, s := range t.stops {
		if s.IsTerminal() {
			continue
		}
		if next == nil || s.Sequence() < next.Sequence() {
			next = s
		}
	}
	return next
}

// Accept binds a vehicle (and optional trailer) to the trip. Legal only from
// Scheduled; the vehicle identifier must be non-empty.
func (t *Trip) Accept(vehicleID string, trailerID *string) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleId")
	}

	newStatus, err := t.status.Accept()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.vehicleID = vehicleID
	t.trailerID = trailerID
	return nil
}

// Start moves the trip to InTransit. Legal only when a vehicle is bound.
func (t *Trip) Start() error {
	newStatus, err := t.status.Start()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// StartStop transitions the given stop to InTransit. Only the next pending
// stop can be started; anything else fails with ErrStopOutOfOrder and leaves
// the stop untouched.
func (t *Trip) StartStop(stopID kernel.UUID) error {
	stop, err := t.StopByID(stopID)
	if err != nil {
		return err
	}

	next := t.NextStop()
	if next == nil {
		return ErrNoPendingStops
	}
	if !next.ID().IsEqual(stopID) {
		return ErrStopOutOfOrder
	}

	return stop.start()
}

// CompleteStop transitions an in-transit stop to Completed, attaching the
// POD payload for delivery stops. Pickups never require (and never store)
// a POD.
func (t *Trip) CompleteStop(stopID kernel.UUID, pod *ProofOfDelivery) error {
	stop, err := t.StopByID(stopID)
	if err != nil {
		return err
	}
	return stop.complete(pod)
}

// FailStop transitions an in-transit stop to Failed.
func (t *Trip) FailStop(stopID kernel.UUID) error {
	stop, err := t.StopByID(stopID)
	if err != nil {
		return err
	}
	return stop.fail()
}

// ReorderPending applies a complete new ordering of the pending stops.
// orderedStopIDs must list each pending stop exactly once; terminal stops
// keep their existing relative order after all pending ones. Sequence
// numbers are recomputed as a dense ascending run starting at 1.
//
// The server recomputes sequence numbers authoritatively and bumps
// routeVersion; this method is the optimistic local equivalent and does not
// touch routeVersion.
func (t *Trip) ReorderPending(orderedStopIDs []kernel.UUID) error {
	if !t.status.CanEditRoute() {
		return ErrRouteLocked
	}

	pending := t.PendingStops()
	if len(orderedStopIDs) != len(pending) {
		return ErrReorderSetMismatch
	}

	byID := make(map[kernel.UUID]*Stop, len(pending))
	for _, s := range pending {
		byID[s.ID()] = s
	}

	reordered := make([]*Stop, 0, len(t.stops))
	seen := make(map[kernel.UUID]struct{}, len(orderedStopIDs))
	for _, id := range orderedStopIDs {
		if _, dup := seen[id]; dup {
			return ErrReorderSetMismatch
		}
		seen[id] = struct{}{}

		s, ok := byID[id]
		if !ok {
			// Either an id from another trip or a terminal stop.
			if terminal, err := t.StopByID(id); err == nil && terminal.IsTerminal() {
				return ErrStopIsTerminal
			}
			return ErrReorderSetMismatch
		}
		reordered = append(reordered, s)
	}

	for _, s := range t.stops {
		if s.IsTerminal() {
			reordered = append(reordered, s)
		}
	}

	for i, s := range reordered {
		s.setSequence(i + 1)
	}
	t.stops = reordered
	return nil
}

// RemoveStop detaches a stop from the trip, e.g. as the optimistic source
// patch of a move. Terminal stops cannot be removed.
func (t *Trip) RemoveStop(stopID kernel.UUID) (*Stop, error) {
	if !t.status.CanEditRoute() {
		return nil, ErrRouteLocked
	}

	for i, s := range t.stops {
		if !s.ID().IsEqual(stopID) {
			continue
		}
		if s.IsTerminal() {
			return nil, ErrStopIsTerminal
		}
		t.stops = append(t.stops[:i], t.stops[i+1:]...)
		t.renumber()
		return s, nil
	}
	return nil, errs.NewObjectNotFoundError("stopId", stopID.String())
}

// AppendStop places a stop at the end of the route, e.g. as the optimistic
// target patch of a move, pending authoritative refresh.
func (t *Trip) AppendStop(stop *Stop) error {
	if !t.status.CanEditRoute() {
		return ErrRouteLocked
	}
	if err := stop.Validate(); err != nil {
		return err
	}

	maxSeq := 0
	for _, s := range t.stops {
		if s.Sequence() > maxSeq {
			maxSeq = s.Sequence()
		}
	}
	stop.setSequence(maxSeq + 1)
	t.stops = append(t.stops, stop)
	return nil
}

// renumber restores the dense ascending run after a removal, keeping the
// pending-before-terminal ordering intact.
func (t *Trip) renumber() {
	sort.SliceStable(t.stops, func(i, j int) bool {
		return t.stops[i].Sequence() < t.stops[j].Sequence()
	})
	for i, s := range t.stops {
		s.setSequence(i + 1)
	}
}
