package queries

import (
	"errors"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrGetTripsForDateQueryIsNotConstructed = errors.New(
	"GetTripsForDateQuery must be created via NewGetTripsForDateQuery constructor",
)

// GetTripsForDateQuery fetches the driver's trips scheduled on a calendar
// date.
type GetTripsForDateQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetTripsForDateQuery creates a validated trip-list query.
func NewGetTripsForDateQuery(date time.Time) (GetTripsForDateQuery, error) {
	if date.IsZero() {
		return GetTripsForDateQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetTripsForDateQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTripsForDateQuery) Validate() error {
	return q.guard.Validate(ErrGetTripsForDateQueryIsNotConstructed)
}

// Date returns the calendar date to fetch trips for.
func (q GetTripsForDateQuery) Date() time.Time {
	return q.date
}
