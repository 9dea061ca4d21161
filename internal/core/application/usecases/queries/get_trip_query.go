package queries

import (
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrGetTripQueryIsNotConstructed = errors.New(
	"GetTripQuery must be created via NewGetTripQuery constructor",
)

// GetTripQuery fetches one trip, with its full stop list and route version,
// from the dispatch backend.
type GetTripQuery struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTripQuery creates a validated trip query.
func NewGetTripQuery(tripID kernel.UUID) (GetTripQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetTripQuery{}, err
	}

	return GetTripQuery{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTripQuery) Validate() error {
	return q.guard.Validate(ErrGetTripQueryIsNotConstructed)
}

// TripID returns the trip to fetch.
func (q GetTripQuery) TripID() kernel.UUID {
	return q.tripID
}
