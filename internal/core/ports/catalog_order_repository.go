package ports

import (
	"context"

	"artmarket/internal/core/domain/model/order"
)

// CatalogOrderRepository defines the persistence contract for catalog order
// aggregates. Ids are scoped to the catalog kind; a colliding commission id
// never resolves here.
type CatalogOrderRepository interface {
	// Add persists a new catalog order aggregate.
	Add(ctx context.Context, aggregate *order.CatalogOrder) error

	// Get retrieves a catalog order by its kind-scoped id.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.CatalogOrder, error)

	// UpdateDelivery persists the aggregate's delivery fields (status, fee,
	// partner) in one atomic write, conditioned on the stored status still
	// matching the status the aggregate was loaded with. The loser of a
	// concurrent conflicting transition gets InvalidStateError, never a
	// silent overwrite.
	UpdateDelivery(ctx context.Context, aggregate *order.CatalogOrder) error
}
