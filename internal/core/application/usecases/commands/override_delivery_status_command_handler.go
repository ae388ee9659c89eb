package commands

import (
	"context"
	"log/slog"
	"time"

	"artmarket/internal/core/domain/model/audit"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/core/ports"
)

// OverrideDeliveryStatusCommandHandler executes the audited administrative
// status override. The transition and its audit record commit in the same
// transaction; an override that cannot be audited does not happen.
type OverrideDeliveryStatusCommandHandler struct {
	uowFactory AuditUoWFactory
	policy     services.AccessPolicy
	publisher  ports.DeliveryEventPublisher
	logger     *slog.Logger
}

// NewOverrideDeliveryStatusCommandHandler creates a handler for status
// overrides.
func NewOverrideDeliveryStatusCommandHandler(
	uowFactory AuditUoWFactory,
	publisher ports.DeliveryEventPublisher,
	logger *slog.Logger,
) OverrideDeliveryStatusCommandHandler {
	return OverrideDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		publisher:  publisher,
		logger:     logger.With("component", "OverrideDeliveryStatusCommandHandler"),
	}
}

// Handle processes the override command.
// Returns ForbiddenError for non-admin callers and InvalidStateError when the
// target status cannot hold the order's current assignment state.
func (h OverrideDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd OverrideDeliveryStatusCommand) error {
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

	if err = h.policy.Authorize(cmd.Actor(), services.ActionOverrideStatus, ord); err != nil {
		return err
	}

	from := ord.Delivery().Status()
	if err = ord.OverrideDeliveryStatus(cmd.NewStatus(), cmd.Fee()); err != nil {
		return err
	}

	record, err := audit.NewRecord(
		cmd.Actor().ID,
		cmd.OrderRef(),
		from,
		ord.Delivery().Status(),
		ord.Delivery().Fee(),
		cmd.Reason(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = updateOrderDelivery(ctx, uow, ord); err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, statusChangedEvent(ord, from, true))

	return nil
}
