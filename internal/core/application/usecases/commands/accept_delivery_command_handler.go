package commands

import (
	"context"
	"errors"
	"log/slog"

	"artmarket/internal/core/domain/services"
	"artmarket/internal/core/ports"
	"artmarket/internal/pkg/errs"
)

// ErrPartnerIsNotRegistered reports an acceptance attempt by a caller the
// partner registry does not know about.
var ErrPartnerIsNotRegistered = errors.New("delivery partner is not registered")

// AcceptDeliveryCommandHandler executes a partner's acceptance of a pending
// delivery. The fee and partner assignment land in the same conditional update
// as the status, so when two partners race for the same job exactly one
// acceptance commits; the loser observes InvalidStateError.
type AcceptDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	partners   ports.PartnerDirectory
	policy     services.AccessPolicy
	publisher  ports.DeliveryEventPublisher
	logger     *slog.Logger
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	partners ports.PartnerDirectory,
	publisher ports.DeliveryEventPublisher,
	logger *slog.Logger,
) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		partners:   partners,
		policy:     services.NewAccessPolicy(),
		publisher:  publisher,
		logger:     logger.With("component", "AcceptDeliveryCommandHandler"),
	}
}

// Handle processes the acceptance command.
// Returns ErrPartnerIsNotRegistered for unknown partners, InvalidStateError
// when the delivery is not Pending or another partner already won the job.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	exists, err := h.partners.PartnerExists(ctx, cmd.Actor().ID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewForbiddenErrorWithCause(
			services.ActionAcceptDelivery.String(), ErrPartnerIsNotRegistered)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := getOrderByRef(ctx, uow, cmd.OrderRef())
	if err != nil {
		return err
	}

	if err = h.policy.Authorize(cmd.Actor(), services.ActionAcceptDelivery, ord); err != nil {
		return err
	}

	from := ord.Delivery().Status()
	if err = ord.AcceptDelivery(cmd.Fee(), cmd.Actor().ID); err != nil {
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
