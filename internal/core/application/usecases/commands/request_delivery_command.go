package commands

import (
	"errors"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

var ErrRequestDeliveryCommandIsNotConstructed = errors.New(
	"RequestDeliveryCommand must be created via NewRequestDeliveryCommand constructor",
)

// RequestDeliveryCommand asks for physical shipment of a completed order.
// Issued by the owning artist once the work is ready to leave the studio;
// moves the order's delivery status from NotApplicable to Pending.
//
// Example:
//
//	ref, _ := kernel.NewOrderRef(101, kernel.CatalogOrder)
//	cmd, err := NewRequestDeliveryCommand(actor, ref)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery request failed: %w", err)
//	}
type RequestDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	orderRef kernel.OrderRef

	guard guard.ConstructorGuard
}

// NewRequestDeliveryCommand creates a command to request delivery for an order.
// Validates the actor identity and the order reference.
func NewRequestDeliveryCommand(actor services.Actor, orderRef kernel.OrderRef) (RequestDeliveryCommand, error) {
	command := RequestDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setOrderRef(orderRef),
	); err != nil {
		return RequestDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestDeliveryCommandIsNotConstructed if validation fails.
func (c RequestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c RequestDeliveryCommand) Actor() services.Actor {
	return c.actor
}

// OrderRef returns the target order reference.
func (c RequestDeliveryCommand) OrderRef() kernel.OrderRef {
	return c.orderRef
}

func (c *RequestDeliveryCommand) setActor(actor services.Actor) error {
	if actor.ID <= 0 {
		return errs.NewValueIsInvalidError("actorId")
	}
	if err := actor.Role.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RequestDeliveryCommand) setOrderRef(orderRef kernel.OrderRef) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}
