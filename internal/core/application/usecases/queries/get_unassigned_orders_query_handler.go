package queries

import (
	"context"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
)

// GetUnassignedOrdersQueryHandler fetches the unassigned order pool. The
// response replaces the projected pool wholesale; an order that was
// optimistically assigned and is absent from the response simply stays gone.
type GetUnassignedOrdersQueryHandler struct {
	gateway    ports.Gateway
	projection Projection
}

// NewGetUnassignedOrdersQueryHandler creates a handler for order-pool
// fetches.
func NewGetUnassignedOrdersQueryHandler(gateway ports.Gateway, projection Projection) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{
		gateway:    gateway,
		projection: projection,
	}
}

// Handle fetches the pool and installs it.
func (h GetUnassignedOrdersQueryHandler) Handle(ctx context.Context, query GetUnassignedOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.gateway.FetchUnassignedOrders(ctx, query.Date())
	if err != nil {
		return nil, err
	}

	h.projection.ReplaceOrders(orders)
	return orders, nil
}
