package commands

import (
	"errors"
	"sync"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
)

// ErrAssignAlreadyInProgress is returned when an assign or unassign for the
// same order is still in flight. The duplicate submission is rejected before
// any network call is issued.
var ErrAssignAlreadyInProgress = errors.New("an assignment operation for this order is already in progress")

// InflightOrders is the single-flight registry for order assignment. At most
// one assign/unassign operation per order id may be in flight at a time;
// later submissions fail fast instead of queueing.
type InflightOrders struct {
	mu     sync.Mutex
	active map[kernel.UUID]struct{}
}

// NewInflightOrders creates an empty registry.
func NewInflightOrders() *InflightOrders {
	return &InflightOrders{active: make(map[kernel.UUID]struct{})}
}

// Begin claims the order for an assignment operation. Returns
// ErrAssignAlreadyInProgress when another operation holds the claim.
func (f *InflightOrders) Begin(orderID kernel.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, busy := f.active[orderID]; busy {
		return ErrAssignAlreadyInProgress
	}
	f.active[orderID] = struct{}{}
	return nil
}

// End releases the claim. Safe to call for an order that was never claimed.
func (f *InflightOrders) End(orderID kernel.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.active, orderID)
}
