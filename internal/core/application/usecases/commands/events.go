package commands

import (
	"context"
	"log/slog"
	"time"

	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/core/ports"
)

// statusChangedEvent builds the notification payload for a transition that has
// already been applied to the aggregate.
func statusChangedEvent(ord order.Order, from order.DeliveryStatus, override bool) ports.DeliveryStatusChanged {
	event := ports.DeliveryStatusChanged{
		OrderID:    ord.Ref().ID(),
		OrderKind:  ord.Ref().Kind(),
		From:       from,
		To:         ord.Delivery().Status(),
		Override:   override,
		OccurredAt: time.Now().UTC(),
	}

	if partnerID := ord.Delivery().PartnerID(); partnerID != nil {
		id := *partnerID
		event.PartnerID = &id
	}
	if fee := ord.Delivery().Fee(); fee != nil {
		cents := fee.Cents()
		event.FeeCents = &cents
	}

	return event
}

// publishStatusChanged notifies subscribers after the transaction has
// committed. The transition is already durable at this point, so a publish
// failure is logged and swallowed rather than surfaced to the caller.
func publishStatusChanged(
	ctx context.Context,
	publisher ports.DeliveryEventPublisher,
	logger *slog.Logger,
	event ports.DeliveryStatusChanged,
) {
	if err := publisher.PublishStatusChanged(ctx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish delivery status change",
			"orderId", event.OrderID,
			"orderKind", event.OrderKind.String(),
			"to", event.To.String(),
			"error", err,
		)
	}
}
