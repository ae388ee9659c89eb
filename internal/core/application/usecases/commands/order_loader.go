package commands

import (
	"context"
	"fmt"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
)

// getOrderByRef resolves an order reference to the aggregate of the matching
// kind. Ids are kind-scoped, so a catalog lookup never sees commission rows
// and vice versa.
func getOrderByRef(ctx context.Context, uow OrderUoW, ref kernel.OrderRef) (order.Order, error) {
	switch ref.Kind() {
	case kernel.CatalogOrder:
		return uow.CatalogOrderRepository().Get(ctx, ref.ID())
	case kernel.CommissionOrder:
		return uow.CommissionOrderRepository().Get(ctx, ref.ID())
	default:
		return nil, fmt.Errorf("unsupported order kind: %s", ref.Kind())
	}
}

// updateOrderDelivery persists the aggregate's delivery fields through the
// repository matching its concrete kind.
func updateOrderDelivery(ctx context.Context, uow OrderUoW, ord order.Order) error {
	switch aggregate := ord.(type) {
	case *order.CatalogOrder:
		return uow.CatalogOrderRepository().UpdateDelivery(ctx, aggregate)
	case *order.CommissionOrder:
		return uow.CommissionOrderRepository().UpdateDelivery(ctx, aggregate)
	default:
		return fmt.Errorf("unsupported order aggregate type: %T", ord)
	}
}
