// Package queries contains read-side operations in the CQRS architecture.
// Query handlers read the database directly and never mutate state.
package queries

import (
	"errors"
	"time"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

var ErrGetDeliveryInfoQueryIsNotConstructed = errors.New(
	"GetDeliveryInfoQuery must be created via NewGetDeliveryInfoQuery constructor",
)

// GetDeliveryInfoQuery retrieves the delivery state of a single order: status,
// fee, partner, and the resolved pickup and drop-off addresses. Access is
// limited to callers with a relationship to the order.
//
// Example:
//
//	ref, _ := kernel.NewOrderRef(101, kernel.CatalogOrder)
//	query, err := NewGetDeliveryInfoQuery(actor, ref)
//	if err != nil {
//	    return err
//	}
//	info, err := handler.Handle(ctx, query)
type GetDeliveryInfoQuery struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	orderRef kernel.OrderRef

	guard guard.ConstructorGuard
}

// NewGetDeliveryInfoQuery creates a query for a single order's delivery info.
func NewGetDeliveryInfoQuery(actor services.Actor, orderRef kernel.OrderRef) (GetDeliveryInfoQuery, error) {
	query := GetDeliveryInfoQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setActor(actor),
		query.setOrderRef(orderRef),
	); err != nil {
		return GetDeliveryInfoQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryInfoQueryIsNotConstructed if validation fails.
func (q GetDeliveryInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryInfoQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetDeliveryInfoQuery) Actor() services.Actor {
	return q.actor
}

// OrderRef returns the target order reference.
func (q GetDeliveryInfoQuery) OrderRef() kernel.OrderRef {
	return q.orderRef
}

func (q *GetDeliveryInfoQuery) setActor(actor services.Actor) error {
	if actor.ID <= 0 {
		return errs.NewValueIsInvalidError("actorId")
	}
	if err := actor.Role.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *GetDeliveryInfoQuery) setOrderRef(orderRef kernel.OrderRef) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	q.orderRef = orderRef
	return nil
}

// AddressResponse is the flattened address shape query responses carry.
type AddressResponse struct {
	Street string
	City   string
	State  string
	Zip    string
}

// GetDeliveryInfoQueryResponse is the single-order delivery view.
// PickupAddress is nil when the artist has no registered profile address;
// the drop-off address was captured at order creation and is always present.
type GetDeliveryInfoQueryResponse struct {
	OrderID           int64
	OrderKind         string
	Status            string
	ShippingFeeCents  *int64
	DeliveryPartnerID *int64
	TotalAmountCents  int64
	CreatedAt         time.Time
	PickupAddress     *AddressResponse
	DropoffAddress    AddressResponse
}
