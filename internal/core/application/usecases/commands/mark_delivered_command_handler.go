package commands

import (
	"context"
	"log/slog"

	"artmarket/internal/core/domain/services"
	"artmarket/internal/core/ports"
)

// MarkDeliveredCommandHandler executes the OutForDelivery -> Delivered
// transition. Delivered is terminal; no normal operation moves the order
// afterwards.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	publisher  ports.DeliveryEventPublisher
	logger     *slog.Logger
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.DeliveryEventPublisher,
	logger *slog.Logger,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		publisher:  publisher,
		logger:     logger.With("component", "MarkDeliveredCommandHandler"),
	}
}

// Handle processes the delivery completion command.
// Returns ForbiddenError when the caller is not the assigned partner and
// InvalidStateError when the delivery is not OutForDelivery.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := getOrderByRef(ctx, uow, cmd.OrderRef())
	if err != nil {
		return err
	}

	if err = h.policy.Authorize(cmd.Actor(), services.ActionMarkDelivered, ord); err != nil {
		return err
	}

	from := ord.Delivery().Status()
	if err = ord.MarkDelivered(); err != nil {
		return err
	}

	if err = updateOrderDelivery(ctx, uow, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, statusChangedEvent(ord, from, false))

	return nil
}
