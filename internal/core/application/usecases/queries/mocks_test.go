package queries_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGateway struct{ mock.Mock }

func (m *MockGateway) AcceptTrip(ctx context.Context, tripID kernel.UUID, vehicleID string, trailerID *string) (*trip.Trip, error) {
	args := m.Called(ctx, tripID, vehicleID, trailerID)
	t, _ := args.Get(0).(*trip.Trip)
	return t, args.Error(1)
}

func (m *MockGateway) StartTrip(ctx context.Context, tripID kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, tripID)
	t, _ := args.Get(0).(*trip.Trip)
	return t, args.Error(1)
}

func (m *MockGateway) StartStop(ctx context.Context, stopID kernel.UUID) error {
	return m.Called(ctx, stopID).Error(0)
}

func (m *MockGateway) CompleteStop(ctx context.Context, stopID kernel.UUID, pod *trip.ProofOfDelivery) error {
	return m.Called(ctx, stopID, pod).Error(0)
}

func (m *MockGateway) FailStop(ctx context.Context, stopID kernel.UUID) error {
	return m.Called(ctx, stopID).Error(0)
}

func (m *MockGateway) FetchTrip(ctx context.Context, tripID kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, tripID)
	t, _ := args.Get(0).(*trip.Trip)
	return t, args.Error(1)
}

func (m *MockGateway) FetchTripsForDate(ctx context.Context, date time.Time) ([]*trip.Trip, error) {
	args := m.Called(ctx, date)
	trips, _ := args.Get(0).([]*trip.Trip)
	return trips, args.Error(1)
}

func (m *MockGateway) FetchUnassignedOrders(ctx context.Context, date time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, date)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockGateway) AcceptOrder(ctx context.Context, orderID kernel.UUID, tripID *kernel.UUID) (kernel.UUID, error) {
	args := m.Called(ctx, orderID, tripID)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

func (m *MockGateway) UnassignOrder(ctx context.Context, orderID kernel.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *MockGateway) ReorderStops(ctx context.Context, tripID kernel.UUID, stopIDsInOrder []kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, tripID, stopIDsInOrder)
	t, _ := args.Get(0).(*trip.Trip)
	return t, args.Error(1)
}

func (m *MockGateway) MoveStop(ctx context.Context, stopID kernel.UUID, targetTripID kernel.UUID) error {
	return m.Called(ctx, stopID, targetTripID).Error(0)
}

func (m *MockGateway) ReportLocation(ctx context.Context, sample kernel.LocationSample) error {
	return m.Called(ctx, sample).Error(0)
}

func (m *MockGateway) FetchTripLocation(ctx context.Context, tripID kernel.UUID) (*ports.TripLocation, error) {
	args := m.Called(ctx, tripID)
	loc, _ := args.Get(0).(*ports.TripLocation)
	return loc, args.Error(1)
}

func (m *MockGateway) FetchDriverLocation(ctx context.Context, driverID kernel.UUID) (*ports.TripLocation, error) {
	args := m.Called(ctx, driverID)
	loc, _ := args.Get(0).(*ports.TripLocation)
	return loc, args.Error(1)
}

type stubMarks struct {
	mu     sync.Mutex
	marks  map[kernel.UUID]int64
	getErr error
}

func newStubMarks() *stubMarks {
	return &stubMarks{marks: make(map[kernel.UUID]int64)}
}

func (s *stubMarks) Get(_ context.Context, tripID kernel.UUID) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return 0, false, s.getErr
	}
	v, ok := s.marks[tripID]
	return v, ok, nil
}

func (s *stubMarks) failReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

func (s *stubMarks) stored(tripID kernel.UUID) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.marks[tripID]
	return v, ok
}

func (s *stubMarks) Put(_ context.Context, tripID kernel.UUID, version int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[tripID] = version
	return nil
}

type recordPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordPublisher) Publish(e events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordPublisher) published() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestTrip(t *testing.T, status trip.Status, routeVersion int64) *trip.Trip {
	t.Helper()
	tr, err := trip.RestoreTrip(
		kernel.NewUUID(), status,
		time.Now(), time.Now().Add(8*time.Hour),
		nil, "SGX-1234", nil,
		nil, routeVersion,
	)
	require.NoError(t, err)
	return tr
}

func restoredAs(t *testing.T, src *trip.Trip, status trip.Status, routeVersion int64, driverID *kernel.UUID) *trip.Trip {
	t.Helper()
	tr, err := trip.RestoreTrip(
		src.ID(), status,
		src.PlannedStart(), src.PlannedEnd(),
		driverID, "SGX-1234", nil,
		nil, routeVersion,
	)
	require.NoError(t, err)
	return tr
}
