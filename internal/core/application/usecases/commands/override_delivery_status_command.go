package commands

import (
	"errors"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

var ErrOverrideDeliveryStatusCommandIsNotConstructed = errors.New(
	"OverrideDeliveryStatusCommand must be created via NewOverrideDeliveryStatusCommand constructor",
)

// OverrideDeliveryStatusCommand is the administrative escape hatch for support
// workflows: set an order's delivery status directly, bypassing the monotonic
// sequence. A human-readable reason is mandatory and lands in the audit trail
// together with the transition.
//
// Example:
//
//	cmd, err := NewOverrideDeliveryStatusCommand(
//	    admin, ref, order.Pending, nil, "partner cancelled, re-listing job")
//	if err != nil {
//	    return fmt.Errorf("invalid override: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("override failed: %w", err)
//	}
type OverrideDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	actor     services.Actor
	orderRef  kernel.OrderRef
	newStatus order.DeliveryStatus
	fee       *kernel.Money
	reason    string

	guard guard.ConstructorGuard
}

// NewOverrideDeliveryStatusCommand creates an override command.
// The fee is optional and only meaningful for target statuses that carry an
// assignment; the reason must be non-empty.
func NewOverrideDeliveryStatusCommand(
	actor services.Actor,
	orderRef kernel.OrderRef,
	newStatus order.DeliveryStatus,
	fee *kernel.Money,
	reason string,
) (OverrideDeliveryStatusCommand, error) {
	command := OverrideDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setOrderRef(orderRef),
		command.setNewStatus(newStatus),
		command.setFee(fee),
		command.setReason(reason),
	); err != nil {
		return OverrideDeliveryStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOverrideDeliveryStatusCommandIsNotConstructed if validation fails.
func (c OverrideDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideDeliveryStatusCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c OverrideDeliveryStatusCommand) Actor() services.Actor {
	return c.actor
}

// OrderRef returns the target order reference.
func (c OverrideDeliveryStatusCommand) OrderRef() kernel.OrderRef {
	return c.orderRef
}

// NewStatus returns the status the delivery is forced into.
func (c OverrideDeliveryStatusCommand) NewStatus() order.DeliveryStatus {
	return c.newStatus
}

// Fee returns the optional shipping fee accompanying the override.
func (c OverrideDeliveryStatusCommand) Fee() *kernel.Money {
	return c.fee
}

// Reason returns the mandatory justification recorded in the audit trail.
func (c OverrideDeliveryStatusCommand) Reason() string {
	return c.reason
}

func (c *OverrideDeliveryStatusCommand) setActor(actor services.Actor) error {
	if actor.ID <= 0 {
		return errs.NewValueIsInvalidError("actorId")
	}
	if err := actor.Role.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *OverrideDeliveryStatusCommand) setOrderRef(orderRef kernel.OrderRef) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}

func (c *OverrideDeliveryStatusCommand) setNewStatus(newStatus order.DeliveryStatus) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *OverrideDeliveryStatusCommand) setFee(fee *kernel.Money) error {
	if fee != nil {
		if err := fee.Validate(); err != nil {
			return err
		}
	}

	c.fee = fee
	return nil
}

func (c *OverrideDeliveryStatusCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
