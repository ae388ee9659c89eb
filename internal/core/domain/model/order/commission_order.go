package order

import (
	"errors"
	"fmt"
	"time"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/pkg/errs"
)

// ErrCommissionOrderIsNotConstructed is returned when a CommissionOrder
// instance was not created through NewCommissionOrder or
// RestoreCommissionOrder.
var ErrCommissionOrderIsNotConstructed = errors.New(
	"CommissionOrder must be created via NewCommissionOrder or RestoreCommissionOrder constructors")

// CommissionOrder is the aggregate for a bespoke artwork request negotiated
// between one buyer and one artist. Unlike catalog orders it carries the
// negotiation record: title, medium and style descriptors, the agreed budget,
// the artist-proposed deadline, and the artist's response (acceptance
// timestamp or rejection reason).
//
// The negotiated budget doubles as the order total for delivery purposes.
type CommissionOrder struct {
	DeliveryFields

	id              int64
	buyerID         int64
	artistID        int64
	title           string
	medium          string
	style           string
	budget          kernel.Money
	deadline        *time.Time
	rejectionReason *string
	respondedAt     *time.Time
	shippingAddress kernel.Address
	createdAt       time.Time

	isConstructed bool
}

// NewCommissionOrder creates a commission at the start of its delivery
// lifecycle. Commissions are still being negotiated at creation, so the
// delivery status starts at NotApplicable.
func NewCommissionOrder(
	id int64,
	buyerID int64,
	artistID int64,
	title string,
	medium string,
	style string,
	budget kernel.Money,
	shippingAddress kernel.Address,
	createdAt time.Time,
) (*CommissionOrder, error) {
	delivery, err := NewDelivery(NotApplicable)
	if err != nil {
		return nil, err
	}

	return RestoreCommissionOrder(id, buyerID, artistID, title, medium, style, budget,
		nil, nil, nil, shippingAddress, createdAt, delivery)
}

// RestoreCommissionOrder reconstructs a commission from persistence,
// revalidating every invariant.
func RestoreCommissionOrder(
	id int64,
	buyerID int64,
	artistID int64,
	title string,
	medium string,
	style string,
	budget kernel.Money,
	deadline *time.Time,
	rejectionReason *string,
	respondedAt *time.Time,
	shippingAddress kernel.Address,
	createdAt time.Time,
	delivery Delivery,
) (*CommissionOrder, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a positive id", id))
	}
	if buyerID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("buyerId",
			fmt.Errorf("%d is not a positive id", buyerID))
	}
	if artistID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("artistId",
			fmt.Errorf("%d is not a positive id", artistID))
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}
	if err := shippingAddress.Validate(); err != nil {
		return nil, err
	}
	if err := delivery.Validate(); err != nil {
		return nil, err
	}

	return &CommissionOrder{
		DeliveryFields:  newDeliveryFields(delivery),
		id:              id,
		buyerID:         buyerID,
		artistID:        artistID,
		title:           title,
		medium:          medium,
		style:           style,
		budget:          budget,
		deadline:        deadline,
		rejectionReason: rejectionReason,
		respondedAt:     respondedAt,
		shippingAddress: shippingAddress,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the aggregate was created through a constructor.
func (o *CommissionOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrCommissionOrderIsNotConstructed
	}
	return nil
}

// Ref returns the order's identity scoped to the commission kind.
func (o *CommissionOrder) Ref() kernel.OrderRef {
	ref, _ := kernel.NewOrderRef(o.id, kernel.CommissionOrder)
	return ref
}

// BuyerID returns the commissioning buyer.
func (o *CommissionOrder) BuyerID() int64 {
	return o.buyerID
}

// ArtistID returns the commissioned artist.
func (o *CommissionOrder) ArtistID() int64 {
	return o.artistID
}

// OwnedByArtist reports whether the artist is the commissioned artist.
func (o *CommissionOrder) OwnedByArtist(artistID int64) bool {
	return o.artistID == artistID
}

// PickupArtistID returns the commissioned artist, whose registered address is
// the pickup point.
func (o *CommissionOrder) PickupArtistID() int64 {
	return o.artistID
}

// Title returns the commission title.
func (o *CommissionOrder) Title() string {
	return o.title
}

// Medium returns the requested medium descriptor, possibly empty.
func (o *CommissionOrder) Medium() string {
	return o.medium
}

// Style returns the requested style descriptor, possibly empty.
func (o *CommissionOrder) Style() string {
	return o.style
}

// Budget returns the negotiated budget.
func (o *CommissionOrder) Budget() kernel.Money {
	return o.budget
}

// Deadline returns the artist-proposed completion deadline, or nil before the
// artist responded.
func (o *CommissionOrder) Deadline() *time.Time {
	return o.deadline
}

// RejectionReason returns the artist's rejection reason, or nil if the
// commission was not rejected.
func (o *CommissionOrder) RejectionReason() *string {
	return o.rejectionReason
}

// RespondedAt returns when the artist responded to the request, or nil.
func (o *CommissionOrder) RespondedAt() *time.Time {
	return o.respondedAt
}

// TotalAmount returns the negotiated budget, which serves as the order total
// for delivery purposes.
func (o *CommissionOrder) TotalAmount() kernel.Money {
	return o.budget
}

// ShippingAddress returns the buyer's drop-off address.
func (o *CommissionOrder) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

// CreatedAt returns the commission creation time.
func (o *CommissionOrder) CreatedAt() time.Time {
	return o.createdAt
}
