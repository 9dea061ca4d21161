package queries

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrGetTripLocationQueryIsNotConstructed = errors.New(
	"GetTripLocationQuery must be created via NewGetTripLocationQuery constructor",
)

// GetTripLocationQuery fetches the last reported position of the vehicle
// executing a trip, for the dispatcher's monitoring view.
type GetTripLocationQuery struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTripLocationQuery creates a validated location query.
func NewGetTripLocationQuery(tripID kernel.UUID) (GetTripLocationQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetTripLocationQuery{}, err
	}

	return GetTripLocationQuery{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTripLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetTripLocationQueryIsNotConstructed)
}

// TripID returns the trip whose position is requested.
func (q GetTripLocationQuery) TripID() kernel.UUID {
	return q.tripID
}
