package commands

import (
	"errors"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

var ErrMarkOutForDeliveryCommandIsNotConstructed = errors.New(
	"MarkOutForDeliveryCommand must be created via NewMarkOutForDeliveryCommand constructor",
)

// MarkOutForDeliveryCommand is the assigned partner reporting that the package
// left the pickup point. Moves the delivery from Accepted to OutForDelivery.
type MarkOutForDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	orderRef kernel.OrderRef

	guard guard.ConstructorGuard
}

// NewMarkOutForDeliveryCommand creates a command to mark an order as out for
// delivery.
func NewMarkOutForDeliveryCommand(actor services.Actor, orderRef kernel.OrderRef) (MarkOutForDeliveryCommand, error) {
	command := MarkOutForDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setOrderRef(orderRef),
	); err != nil {
		return MarkOutForDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkOutForDeliveryCommandIsNotConstructed if validation fails.
func (c MarkOutForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOutForDeliveryCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c MarkOutForDeliveryCommand) Actor() services.Actor {
	return c.actor
}

// OrderRef returns the target order reference.
func (c MarkOutForDeliveryCommand) OrderRef() kernel.OrderRef {
	return c.orderRef
}

func (c *MarkOutForDeliveryCommand) setActor(actor services.Actor) error {
	if actor.ID <= 0 {
		return errs.NewValueIsInvalidError("actorId")
	}
	if err := actor.Role.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *MarkOutForDeliveryCommand) setOrderRef(orderRef kernel.OrderRef) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}
