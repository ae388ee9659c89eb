package ports

import (
	"context"
	"time"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
)

// DeliveryStatusChanged describes a committed delivery status transition.
type DeliveryStatusChanged struct {
	OrderID    int64
	OrderKind  kernel.OrderKind
	From       order.DeliveryStatus
	To         order.DeliveryStatus
	PartnerID  *int64
	FeeCents   *int64
	Override   bool
	OccurredAt time.Time
}

// DeliveryEventPublisher emits delivery status change notifications after the
// owning transaction commits. Publishing is best effort: a failed publish must
// not fail the operation that produced the transition.
type DeliveryEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event DeliveryStatusChanged) error
}
