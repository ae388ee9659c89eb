package order

import (
	"errors"
	"fmt"
	"time"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/pkg/errs"
)

// ErrCatalogOrderIsNotConstructed is returned when a CatalogOrder instance
// was not created through NewCatalogOrder or RestoreCatalogOrder.
var ErrCatalogOrderIsNotConstructed = errors.New(
	"CatalogOrder must be created via NewCatalogOrder or RestoreCatalogOrder constructors")

// OrderItem is one line of a catalog order: an artwork, the quantity bought,
// the unit price at purchase time, and the artist who owns the artwork. An
// order may span multiple artists; delivery applies to the whole order, not
// per item.
//
// OrderItem is an immutable value object.
type OrderItem struct {
	artworkID int64
	artistID  int64
	quantity  int
	unitPrice kernel.Money
}

// NewOrderItem creates a validated order line.
//
// Returns:
//   - OrderItem: a valid line
//   - error: ValueIsInvalidError for non-positive artwork/artist ids,
//     ValueIsOutOfRangeError for a quantity below 1, or the unit price's own
//     validation error
func NewOrderItem(artworkID, artistID int64, quantity int, unitPrice kernel.Money) (OrderItem, error) {
	if artworkID <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause("artworkId",
			fmt.Errorf("%d is not a positive id", artworkID))
	}
	if artistID <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause("artistId",
			fmt.Errorf("%d is not a positive id", artistID))
	}
	if quantity < 1 {
		return OrderItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, int(^uint(0)>>1))
	}
	if err := unitPrice.Validate(); err != nil {
		return OrderItem{}, err
	}

	return OrderItem{
		artworkID: artworkID,
		artistID:  artistID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ArtworkID returns the purchased artwork's id.
func (i OrderItem) ArtworkID() int64 { return i.artworkID }

// ArtistID returns the artist owning the artwork.
func (i OrderItem) ArtistID() int64 { return i.artistID }

// Quantity returns how many units were bought.
func (i OrderItem) Quantity() int { return i.quantity }

// UnitPrice returns the price per unit captured at purchase time.
func (i OrderItem) UnitPrice() kernel.Money { return i.unitPrice }

// CatalogOrder is the aggregate for a purchase of pre-existing artworks.
// Artist ownership is indirect: the order is owned by every artist that owns
// one of its items, and the first item's artist is the pickup point.
//
// Invariants:
//   - at least one item; every item valid
//   - the buyer id is positive and immutable
//   - the shipping address is captured at creation and never changes
//   - delivery fields follow the DeliveryStatus state machine
type CatalogOrder struct {
	DeliveryFields

	id              int64
	buyerID         int64
	items           []OrderItem
	totalAmount     kernel.Money
	shippingAddress kernel.Address
	createdAt       time.Time

	isConstructed bool
}

// NewCatalogOrder creates a catalog order at the start of its delivery
// lifecycle. deliveryRequested selects the initial status: Pending when the
// buyer asked for delivery at checkout, NotApplicable otherwise.
func NewCatalogOrder(
	id int64,
	buyerID int64,
	items []OrderItem,
	totalAmount kernel.Money,
	shippingAddress kernel.Address,
	createdAt time.Time,
	deliveryRequested bool,
) (*CatalogOrder, error) {
	initial := NotApplicable
	if deliveryRequested {
		initial = Pending
	}

	delivery, err := NewDelivery(initial)
	if err != nil {
		return nil, err
	}

	return RestoreCatalogOrder(id, buyerID, items, totalAmount, shippingAddress, createdAt, delivery)
}

// RestoreCatalogOrder reconstructs a catalog order from persistence,
// revalidating every invariant.
func RestoreCatalogOrder(
	id int64,
	buyerID int64,
	items []OrderItem,
	totalAmount kernel.Money,
	shippingAddress kernel.Address,
	createdAt time.Time,
	delivery Delivery,
) (*CatalogOrder, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a positive id", id))
	}
	if buyerID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("buyerId",
			fmt.Errorf("%d is not a positive id", buyerID))
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}
	if err := totalAmount.Validate(); err != nil {
		return nil, err
	}
	if err := shippingAddress.Validate(); err != nil {
		return nil, err
	}
	if err := delivery.Validate(); err != nil {
		return nil, err
	}

	return &CatalogOrder{
		DeliveryFields:  newDeliveryFields(delivery),
		id:              id,
		buyerID:         buyerID,
		items:           append([]OrderItem(nil), items...),
		totalAmount:     totalAmount,
		shippingAddress: shippingAddress,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the aggregate was created through a constructor.
func (o *CatalogOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrCatalogOrderIsNotConstructed
	}
	return nil
}

// Ref returns the order's identity scoped to the catalog kind.
func (o *CatalogOrder) Ref() kernel.OrderRef {
	ref, _ := kernel.NewOrderRef(o.id, kernel.CatalogOrder)
	return ref
}

// BuyerID returns the purchasing buyer.
func (o *CatalogOrder) BuyerID() int64 {
	return o.buyerID
}

// Items returns a copy of the ordered line items.
func (o *CatalogOrder) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

// ArtistIDs returns the distinct artists owning items of the order, in item
// order.
func (o *CatalogOrder) ArtistIDs() []int64 {
	seen := make(map[int64]bool, len(o.items))
	ids := make([]int64, 0, len(o.items))
	for _, item := range o.items {
		if !seen[item.artistID] {
			seen[item.artistID] = true
			ids = append(ids, item.artistID)
		}
	}
	return ids
}

// OwnedByArtist reports whether the artist owns any item of the order.
func (o *CatalogOrder) OwnedByArtist(artistID int64) bool {
	for _, item := range o.items {
		if item.artistID == artistID {
			return true
		}
	}
	return false
}

// PickupArtistID returns the first item's artist, whose registered address is
// used as the pickup point for multi-artist orders.
func (o *CatalogOrder) PickupArtistID() int64 {
	return o.items[0].artistID
}

// TotalAmount returns the order total captured at purchase time.
func (o *CatalogOrder) TotalAmount() kernel.Money {
	return o.totalAmount
}

// ShippingAddress returns the buyer's drop-off address.
func (o *CatalogOrder) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

// CreatedAt returns the order creation time.
func (o *CatalogOrder) CreatedAt() time.Time {
	return o.createdAt
}
