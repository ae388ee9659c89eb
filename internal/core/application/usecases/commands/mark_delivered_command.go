package commands

import (
	"errors"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand is the assigned partner confirming hand-off to the
// buyer. Moves the delivery from OutForDelivery to the terminal Delivered
// status.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	orderRef kernel.OrderRef

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark an order as delivered.
func NewMarkDeliveredCommand(actor services.Actor, orderRef kernel.OrderRef) (MarkDeliveredCommand, error) {
	command := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setOrderRef(orderRef),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkDeliveredCommandIsNotConstructed if validation fails.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c MarkDeliveredCommand) Actor() services.Actor {
	return c.actor
}

// OrderRef returns the target order reference.
func (c MarkDeliveredCommand) OrderRef() kernel.OrderRef {
	return c.orderRef
}

func (c *MarkDeliveredCommand) setActor(actor services.Actor) error {
	if actor.ID <= 0 {
		return errs.NewValueIsInvalidError("actorId")
	}
	if err := actor.Role.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *MarkDeliveredCommand) setOrderRef(orderRef kernel.OrderRef) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}
