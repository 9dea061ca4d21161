package queries

import (
	"errors"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery fetches the pool of orders awaiting assignment
// for a calendar date.
type GetUnassignedOrdersQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a validated order-pool query.
func NewGetUnassignedOrdersQuery(date time.Time) (GetUnassignedOrdersQuery, error) {
	if date.IsZero() {
		return GetUnassignedOrdersQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetUnassignedOrdersQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// Date returns the calendar date to fetch the pool for.
func (q GetUnassignedOrdersQuery) Date() time.Time {
	return q.date
}
