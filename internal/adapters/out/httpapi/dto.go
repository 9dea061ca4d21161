package httpapi

import (
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
)

// Wire DTOs for the dispatch backend's JSON API. Mapping to domain types
// happens in one direction per type: requests are built from domain values,
// responses are restored through the aggregate constructors so every
// invariant is re-validated at the trust boundary.

type podDTO struct {
	PhotoRef string     `json:"podPhotoRef"`
	SignedBy *string    `json:"signedBy,omitempty"`
	SignedAt *time.Time `json:"signedAt,omitempty"`
}

type stopDTO struct {
	ID         string     `json:"id"`
	Sequence   int        `json:"sequence"`
	Kind       string     `json:"type"`
	Line1      string     `json:"addressLine1"`
	City       string     `json:"city"`
	PostalCode string     `json:"postalCode"`
	PlannedAt  time.Time  `json:"plannedAt"`
	Status     string     `json:"status"`
	OrderID    *string    `json:"orderId,omitempty"`
	Pod        *podDTO    `json:"pod,omitempty"`
}

type tripDTO struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	PlannedStart time.Time `json:"plannedStart"`
	PlannedEnd   time.Time `json:"plannedEnd"`
	DriverID     *string   `json:"driverId,omitempty"`
	VehicleID    string    `json:"vehicleId,omitempty"`
	TrailerID    *string   `json:"trailerId,omitempty"`
	RouteVersion int64     `json:"routeVersion"`
	Stops        []stopDTO `json:"stops"`
}

type stopTemplateDTO struct {
	Kind       string    `json:"type"`
	Line1      string    `json:"addressLine1"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	PlannedAt  time.Time `json:"plannedAt"`
}

type orderDTO struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customerName"`
	Status       string            `json:"status"`
	TripID       *string           `json:"tripId,omitempty"`
	Stops        []stopTemplateDTO `json:"stops"`
}

type locationDTO struct {
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
	CapturedAt *time.Time `json:"capturedAt,omitempty"`
}

type reportLocationDTO struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Accuracy   float64   `json:"accuracy"`
	Heading    *float64  `json:"heading,omitempty"`
	Speed      *float64  `json:"speed,omitempty"`
	CapturedAt time.Time `json:"capturedAt"`
}

type acceptTripDTO struct {
	VehicleID string  `json:"vehicleId"`
	TrailerID *string `json:"trailerId,omitempty"`
}

type acceptOrderDTO struct {
	TripID *string `json:"tripId,omitempty"`
}

type acceptOrderResponseDTO struct {
	TripID string `json:"tripId"`
}

type reorderStopsDTO struct {
	StopIDsInOrder []string `json:"stopIdsInOrder"`
}

type moveStopDTO struct {
	TargetTripID string `json:"targetTripId"`
}

func (d podDTO) toDomain() (*trip.ProofOfDelivery, error) {
	signedAt := time.Time{}
	if d.SignedAt != nil {
		signedAt = *d.SignedAt
	}
	pod, err := trip.NewProofOfDelivery(d.PhotoRef, d.SignedBy, signedAt)
	if err != nil {
		return nil, err
	}
	return &pod, nil
}

func (d stopDTO) toDomain() (*trip.Stop, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return nil, err
	}
	kind, err := trip.StopKindFromString(d.Kind)
	if err != nil {
		return nil, err
	}
	status, err := trip.StopStatusFromString(d.Status)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if d.OrderID != nil {
		parsed, err := kernel.UUIDFromString(*d.OrderID)
		if err != nil {
			return nil, err
		}
		orderID = &parsed
	}

	var pod *trip.ProofOfDelivery
	if d.Pod != nil {
		pod, err = d.Pod.toDomain()
		if err != nil {
			return nil, err
		}
	}

	return trip.RestoreStop(
		id,
		d.Sequence,
		kind,
		trip.Address{Line1: d.Line1, City: d.City, PostalCode: d.PostalCode},
		d.PlannedAt,
		status,
		orderID,
		pod,
	)
}

func (d tripDTO) toDomain() (*trip.Trip, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return nil, err
	}
	status, err := trip.StatusFromString(d.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if d.DriverID != nil {
		parsed, err := kernel.UUIDFromString(*d.DriverID)
		if err != nil {
			return nil, err
		}
		driverID = &parsed
	}

	stops := make([]*trip.Stop, 0, len(d.Stops))
	for _, s := range d.Stops {
		restored, err := s.toDomain()
		if err != nil {
			return nil, err
		}
		stops = append(stops, restored)
	}

	return trip.RestoreTrip(
		id,
		status,
		d.PlannedStart,
		d.PlannedEnd,
		driverID,
		d.VehicleID,
		d.TrailerID,
		stops,
		d.RouteVersion,
	)
}

func (d orderDTO) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(d.Status)
	if err != nil {
		return nil, err
	}

	var tripID *kernel.UUID
	if d.TripID != nil {
		parsed, err := kernel.UUIDFromString(*d.TripID)
		if err != nil {
			return nil, err
		}
		tripID = &parsed
	}

	templates := make([]order.StopTemplate, 0, len(d.Stops))
	for _, s := range d.Stops {
		kind, err := trip.StopKindFromString(s.Kind)
		if err != nil {
			return nil, err
		}
		templates = append(templates, order.StopTemplate{
			Kind:      kind,
			Address:   trip.Address{Line1: s.Line1, City: s.City, PostalCode: s.PostalCode},
			PlannedAt: s.PlannedAt,
		})
	}

	return order.RestoreOrder(id, d.CustomerName, templates, status, tripID)
}

func newPodDTO(pod *trip.ProofOfDelivery) *podDTO {
	if pod == nil {
		return nil
	}
	signedAt := pod.SignedAt()
	return &podDTO{
		PhotoRef: pod.PhotoRef(),
		SignedBy: pod.SignedBy(),
		SignedAt: &signedAt,
	}
}

func newReportLocationDTO(sample kernel.LocationSample) reportLocationDTO {
	return reportLocationDTO{
		Lat:        sample.Point.Lat(),
		Lng:        sample.Point.Lng(),
		Accuracy:   sample.Accuracy,
		Heading:    sample.Heading,
		Speed:      sample.Speed,
		CapturedAt: sample.CapturedAt,
	}
}
