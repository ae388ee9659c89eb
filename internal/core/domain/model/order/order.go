package order

import (
	"time"

	"artmarket/internal/core/domain/model/kernel"
)

// Order is the contract both order kinds satisfy. The delivery status engine,
// the authorization gate, and the address resolver operate on this interface
// and never need to know which concrete kind they hold; the kind travels with
// the reference (kernel.OrderRef) for everything identity-related.
type Order interface {
	// Ref returns the complete order identity: kind-scoped id plus kind.
	Ref() kernel.OrderRef

	// BuyerID returns the buyer who placed the order.
	BuyerID() int64

	// OwnedByArtist reports whether the given artist owns the order: the
	// commissioned artist for commissions, any item-owning artist for
	// catalog orders.
	OwnedByArtist(artistID int64) bool

	// PickupArtistID returns the artist whose registered address is the
	// pickup point for the delivery.
	PickupArtistID() int64

	// TotalAmount returns the order total: the item sum for catalog orders,
	// the negotiated budget for commissions.
	TotalAmount() kernel.Money

	// ShippingAddress returns the buyer-supplied drop-off address captured
	// at order creation. It is immutable afterwards.
	ShippingAddress() kernel.Address

	// CreatedAt returns the order creation time.
	CreatedAt() time.Time

	// Delivery returns the current delivery lifecycle fields.
	Delivery() Delivery

	// LoadedDeliveryStatus returns the delivery status the aggregate was
	// loaded with. Repositories condition their updates on it so concurrent
	// conflicting transitions never both succeed.
	LoadedDeliveryStatus() DeliveryStatus

	// RequestDelivery moves the delivery from NotApplicable to Pending.
	RequestDelivery() error

	// AcceptDelivery moves the delivery from Pending to Accepted, setting the
	// shipping fee and the delivery partner atomically with the status.
	AcceptDelivery(fee kernel.Money, partnerID int64) error

	// MarkOutForDelivery moves the delivery from Accepted to OutForDelivery.
	MarkOutForDelivery() error

	// MarkDelivered moves the delivery from OutForDelivery to Delivered.
	MarkDelivered() error

	// OverrideDeliveryStatus sets the delivery status directly, bypassing the
	// monotonic sequence. Reserved for the audited administrative command.
	OverrideDeliveryStatus(status DeliveryStatus, fee *kernel.Money) error
}

// DeliveryFields holds the delivery lifecycle state shared by both order
// kinds. Aggregates embed it to gain the transition methods; the kind-specific
// fields (catalog items, commission negotiation data) never migrate across
// kinds and stay on the concrete aggregates.
//
// loadedStatus records the status the aggregate carried when it was restored
// from persistence. It is the expected pre-state for the store's conditional
// update and never changes after restoration, even as transitions advance the
// in-memory delivery.
type DeliveryFields struct {
	delivery     Delivery
	loadedStatus DeliveryStatus
}

// newDeliveryFields initializes lifecycle fields for a newly created order.
func newDeliveryFields(delivery Delivery) DeliveryFields {
	return DeliveryFields{delivery: delivery, loadedStatus: delivery.Status()}
}

// Delivery returns the current delivery lifecycle fields.
func (f *DeliveryFields) Delivery() Delivery {
	return f.delivery
}

// LoadedDeliveryStatus returns the status the aggregate was restored with.
func (f *DeliveryFields) LoadedDeliveryStatus() DeliveryStatus {
	return f.loadedStatus
}

// RequestDelivery applies the NotApplicable -> Pending transition.
func (f *DeliveryFields) RequestDelivery() error {
	next, err := f.delivery.Request()
	if err != nil {
		return err
	}
	f.delivery = next
	return nil
}

// AcceptDelivery applies the Pending -> Accepted transition, capturing the
// shipping fee and delivery partner together with the status.
func (f *DeliveryFields) AcceptDelivery(fee kernel.Money, partnerID int64) error {
	next, err := f.delivery.Accept(fee, partnerID)
	if err != nil {
		return err
	}
	f.delivery = next
	return nil
}

// MarkOutForDelivery applies the Accepted -> OutForDelivery transition.
func (f *DeliveryFields) MarkOutForDelivery() error {
	next, err := f.delivery.Dispatch()
	if err != nil {
		return err
	}
	f.delivery = next
	return nil
}

// MarkDelivered applies the OutForDelivery -> Delivered transition.
func (f *DeliveryFields) MarkDelivered() error {
	next, err := f.delivery.Complete()
	if err != nil {
		return err
	}
	f.delivery = next
	return nil
}

// OverrideDeliveryStatus sets the status directly via Delivery.Override.
func (f *DeliveryFields) OverrideDeliveryStatus(status DeliveryStatus, fee *kernel.Money) error {
	next, err := f.delivery.Override(status, fee)
	if err != nil {
		return err
	}
	f.delivery = next
	return nil
}
