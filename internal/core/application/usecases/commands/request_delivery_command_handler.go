package commands

import (
	"context"
	"log/slog"

	"artmarket/internal/core/domain/services"
	"artmarket/internal/core/ports"
)

// RequestDeliveryCommandHandler executes the artist-initiated delivery
// request. Loads the order, checks the caller owns it, applies the
// NotApplicable -> Pending transition, and persists it transactionally.
// Publishes a status change notification after commit.
type RequestDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	publisher  ports.DeliveryEventPublisher
	logger     *slog.Logger
}

// NewRequestDeliveryCommandHandler creates a handler for delivery requests.
func NewRequestDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.DeliveryEventPublisher,
	logger *slog.Logger,
) RequestDeliveryCommandHandler {
	return RequestDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		publisher:  publisher,
		logger:     logger.With("component", "RequestDeliveryCommandHandler"),
	}
}

// Handle processes the delivery request command.
// Returns ObjectNotFoundError for missing or not-owned orders and
// InvalidStateError when the delivery is not in NotApplicable status.
func (h RequestDeliveryCommandHandler) Handle(ctx context.Context, cmd RequestDeliveryCommand) error {
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

	if err = h.policy.Authorize(cmd.Actor(), services.ActionRequestDelivery, ord); err != nil {
		return err
	}

	from := ord.Delivery().Status()
	if err = ord.RequestDelivery(); err != nil {
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
