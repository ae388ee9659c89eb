package commands

import (
	"context"
	"log/slog"

	"artmarket/internal/core/domain/services"
	"artmarket/internal/core/ports"
)

// MarkOutForDeliveryCommandHandler executes the Accepted -> OutForDelivery
// transition. Only the partner assigned at acceptance time may report it.
type MarkOutForDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	publisher  ports.DeliveryEventPublisher
	logger     *slog.Logger
}

// NewMarkOutForDeliveryCommandHandler creates a handler for the out-for-delivery
// transition.
func NewMarkOutForDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.DeliveryEventPublisher,
	logger *slog.Logger,
) MarkOutForDeliveryCommandHandler {
	return MarkOutForDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		publisher:  publisher,
		logger:     logger.With("component", "MarkOutForDeliveryCommandHandler"),
	}
}

// Handle processes the out-for-delivery command.
// Returns ForbiddenError when the caller is not the assigned partner and
// InvalidStateError when the delivery is not Accepted.
func (h MarkOutForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkOutForDeliveryCommand) error {
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

	if err = h.policy.Authorize(cmd.Actor(), services.ActionMarkOutForDelivery, ord); err != nil {
		return err
	}

	from := ord.Delivery().Status()
	if err = ord.MarkOutForDelivery(); err != nil {
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
