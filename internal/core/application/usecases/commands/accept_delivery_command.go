package commands

import (
	"errors"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand is a delivery partner taking a pending job. Carries
// the quoted shipping fee; the fee and the partner assignment are recorded
// atomically with the Pending -> Accepted transition, so an Accepted order
// always has both.
//
// Example:
//
//	fee, _ := kernel.NewMoney(1550)
//	cmd, err := NewAcceptDeliveryCommand(actor, ref, fee)
//	if err != nil {
//	    return fmt.Errorf("invalid acceptance: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("acceptance failed: %w", err)
//	}
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	orderRef kernel.OrderRef
	fee      kernel.Money

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a partner to accept a pending
// delivery with the given shipping fee.
func NewAcceptDeliveryCommand(
	actor services.Actor,
	orderRef kernel.OrderRef,
	fee kernel.Money,
) (AcceptDeliveryCommand, error) {
	command := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setOrderRef(orderRef),
		command.setFee(fee),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptDeliveryCommandIsNotConstructed if validation fails.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c AcceptDeliveryCommand) Actor() services.Actor {
	return c.actor
}

// OrderRef returns the target order reference.
func (c AcceptDeliveryCommand) OrderRef() kernel.OrderRef {
	return c.orderRef
}

// Fee returns the shipping fee quoted by the partner.
func (c AcceptDeliveryCommand) Fee() kernel.Money {
	return c.fee
}

func (c *AcceptDeliveryCommand) setActor(actor services.Actor) error {
	if actor.ID <= 0 {
		return errs.NewValueIsInvalidError("actorId")
	}
	if err := actor.Role.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AcceptDeliveryCommand) setOrderRef(orderRef kernel.OrderRef) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}

func (c *AcceptDeliveryCommand) setFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}

	c.fee = fee
	return nil
}
