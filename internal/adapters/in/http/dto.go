package http

import (
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
)

// Error is the uniform error body returned by the facade.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type PodResponse struct {
	PodPhotoRef string    `json:"podPhotoRef"`
	SignedBy    *string   `json:"signedBy,omitempty"`
	SignedAt    time.Time `json:"signedAt"`
}

type StopResponse struct {
	ID           string       `json:"id"`
	Sequence     int          `json:"sequence"`
	Kind         string       `json:"kind"`
	AddressLine1 string       `json:"addressLine1"`
	City         string       `json:"city"`
	PostalCode   string       `json:"postalCode"`
	PlannedAt    time.Time    `json:"plannedAt"`
	Status       string       `json:"status"`
	OrderID      *string      `json:"orderId,omitempty"`
	Pod          *PodResponse `json:"pod,omitempty"`
}

type TripResponse struct {
	ID           string         `json:"id"`
	Status       string         `json:"status"`
	PlannedStart time.Time      `json:"plannedStart"`
	PlannedEnd   time.Time      `json:"plannedEnd"`
	DriverID     *string        `json:"driverId,omitempty"`
	VehicleID    string         `json:"vehicleId,omitempty"`
	TrailerID    *string        `json:"trailerId,omitempty"`
	RouteVersion int64          `json:"routeVersion"`
	Stops        []StopResponse `json:"stops"`
}

type StopTemplateResponse struct {
	Kind         string    `json:"kind"`
	AddressLine1 string    `json:"addressLine1"`
	City         string    `json:"city"`
	PostalCode   string    `json:"postalCode"`
	PlannedAt    time.Time `json:"plannedAt"`
}

type OrderResponse struct {
	ID           string                 `json:"id"`
	CustomerName string                 `json:"customerName"`
	Status       string                 `json:"status"`
	TripID       *string                `json:"tripId,omitempty"`
	Stops        []StopTemplateResponse `json:"stops"`
}

type LocationResponse struct {
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
	CapturedAt *time.Time `json:"capturedAt,omitempty"`
}

type AcceptTripRequest struct {
	VehicleID string  `json:"vehicleId"`
	TrailerID *string `json:"trailerId,omitempty"`
}

type PodRequest struct {
	PodPhotoRef string    `json:"podPhotoRef"`
	SignedBy    *string   `json:"signedBy,omitempty"`
	SignedAt    time.Time `json:"signedAt"`
}

type CompleteStopRequest struct {
	Pod *PodRequest `json:"pod,omitempty"`
}

type AssignOrderRequest struct {
	TripID *string `json:"tripId,omitempty"`
}

type ReorderStopsRequest struct {
	StopIDsInOrder []string `json:"stopIdsInOrder"`
}

type MoveStopRequest struct {
	TargetTripID string `json:"targetTripId"`
}

func newTripResponse(t *trip.Trip) TripResponse {
	stops := make([]StopResponse, 0, len(t.Stops()))
	for _, s := range t.Stops() {
		stops = append(stops, newStopResponse(s))
	}

	var driverID *string
	if id := t.DriverID(); id != nil {
		raw := id.String()
		driverID = &raw
	}

	return TripResponse{
		ID:           t.ID().String(),
		Status:       t.Status().String(),
		PlannedStart: t.PlannedStart(),
		PlannedEnd:   t.PlannedEnd(),
		DriverID:     driverID,
		VehicleID:    t.VehicleID(),
		TrailerID:    t.TrailerID(),
		RouteVersion: t.RouteVersion(),
		Stops:        stops,
	}
}

func newStopResponse(s *trip.Stop) StopResponse {
	var orderID *string
	if id := s.OrderID(); id != nil {
		raw := id.String()
		orderID = &raw
	}

	var pod *PodResponse
	if p := s.ProofOfDelivery(); p != nil {
		pod = &PodResponse{
			PodPhotoRef: p.PhotoRef(),
			SignedBy:    p.SignedBy(),
			SignedAt:    p.SignedAt(),
		}
	}

	return StopResponse{
		ID:           s.ID().String(),
		Sequence:     s.Sequence(),
		Kind:         s.Kind().String(),
		AddressLine1: s.Address().Line1,
		City:         s.Address().City,
		PostalCode:   s.Address().PostalCode,
		PlannedAt:    s.PlannedAt(),
		Status:       s.Status().String(),
		OrderID:      orderID,
		Pod:          pod,
	}
}

func newOrderResponse(o *order.Order) OrderResponse {
	stops := make([]StopTemplateResponse, 0, len(o.Stops()))
	for _, s := range o.Stops() {
		stops = append(stops, StopTemplateResponse{
			Kind:         s.Kind.String(),
			AddressLine1: s.Address.Line1,
			City:         s.Address.City,
			PostalCode:   s.Address.PostalCode,
			PlannedAt:    s.PlannedAt,
		})
	}

	var tripID *string
	if id := o.TripID(); id != nil {
		raw := id.String()
		tripID = &raw
	}

	return OrderResponse{
		ID:           o.ID().String(),
		CustomerName: o.CustomerName(),
		Status:       o.Status().String(),
		TripID:       tripID,
		Stops:        stops,
	}
}

func newLocationResponse(loc *ports.TripLocation) LocationResponse {
	return LocationResponse{
		Lat:        loc.Point.Lat(),
		Lng:        loc.Point.Lng(),
		CapturedAt: loc.CapturedAt,
	}
}
