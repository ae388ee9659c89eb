package ports

import (
	"context"

	"artmarket/internal/core/domain/model/order"
)

// CommissionOrderRepository defines the persistence contract for commission
// order aggregates. Ids are scoped to the commission kind.
type CommissionOrderRepository interface {
	// Add persists a new commission order aggregate.
	Add(ctx context.Context, aggregate *order.CommissionOrder) error

	// Get retrieves a commission order by its kind-scoped id.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.CommissionOrder, error)

	// UpdateDelivery persists the aggregate's delivery fields atomically,
	// conditioned on the stored status matching the loaded status. See
	// CatalogOrderRepository.UpdateDelivery for the concurrency contract.
	UpdateDelivery(ctx context.Context, aggregate *order.CommissionOrder) error
}
