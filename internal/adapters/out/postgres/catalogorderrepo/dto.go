// Package catalogorderrepo persists catalog order aggregates. Handles the
// conversion between the domain aggregate and its relational representation:
// one row per order plus one row per order item.
package catalogorderrepo

import (
	"time"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
)

// CatalogOrderDTO represents the database structure for catalog orders.
// The delivery columns (status, fee, partner) always change together; the
// repository writes them in a single conditional update.
type CatalogOrderDTO struct {
	ID                int64          `gorm:"primaryKey"`
	BuyerID           int64          `gorm:"index"`
	TotalAmountCents  int64          ``
	Shipping          AddressDTO     `gorm:"embedded;embeddedPrefix:ship_"`
	DeliveryStatus    int            `gorm:"index"`
	ShippingFeeCents  *int64         ``
	DeliveryPartnerID *int64         `gorm:"index"`
	CreatedAt         time.Time      ``
	Items             []OrderItemDTO `gorm:"foreignKey:CatalogOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for catalog orders.
func (CatalogOrderDTO) TableName() string {
	return "catalog_orders"
}

// OrderItemDTO represents one line of a catalog order. Position preserves the
// buyer's item ordering; the first item's artist is the pickup artist.
type OrderItemDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	CatalogOrderID int64 `gorm:"index"`
	Position       int   ``
	ArtworkID      int64 ``
	ArtistID       int64 `gorm:"index"`
	Quantity       int   ``
	UnitPriceCents int64 ``
}

// TableName specifies the database table name for catalog order items.
func (OrderItemDTO) TableName() string {
	return "catalog_order_items"
}

// AddressDTO represents the embedded shipping address columns.
type AddressDTO struct {
	Street string
	City   string
	State  string
	Zip    string
}

func fromDomain(aggregate *order.CatalogOrder) CatalogOrderDTO {
	delivery := aggregate.Delivery()

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			CatalogOrderID: aggregate.Ref().ID(),
			Position:       i,
			ArtworkID:      item.ArtworkID(),
			ArtistID:       item.ArtistID(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
		})
	}

	return CatalogOrderDTO{
		ID:                aggregate.Ref().ID(),
		BuyerID:           aggregate.BuyerID(),
		TotalAmountCents:  aggregate.TotalAmount().Cents(),
		Shipping:          addressToDTO(aggregate.ShippingAddress()),
		DeliveryStatus:    int(delivery.Status()),
		ShippingFeeCents:  feeCents(delivery),
		DeliveryPartnerID: delivery.PartnerID(),
		CreatedAt:         aggregate.CreatedAt(),
		Items:             itemDTOs,
	}
}

func toDomain(dto CatalogOrderDTO) (*order.CatalogOrder, error) {
	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, err := kernel.NewMoney(itemDTO.UnitPriceCents)
		if err != nil {
			return nil, err
		}
		item, err := order.NewOrderItem(itemDTO.ArtworkID, itemDTO.ArtistID, itemDTO.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmountCents)
	if err != nil {
		return nil, err
	}
	address, err := addressToDomain(dto.Shipping)
	if err != nil {
		return nil, err
	}
	delivery, err := deliveryToDomain(dto.DeliveryStatus, dto.ShippingFeeCents, dto.DeliveryPartnerID)
	if err != nil {
		return nil, err
	}

	return order.RestoreCatalogOrder(dto.ID, dto.BuyerID, items, totalAmount, address, dto.CreatedAt, delivery)
}

func addressToDTO(address kernel.Address) AddressDTO {
	return AddressDTO{
		Street: address.Street(),
		City:   address.City(),
		State:  address.State(),
		Zip:    address.Zip(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Street, dto.City, dto.State, dto.Zip)
}

func deliveryToDomain(status int, feeCents *int64, partnerID *int64) (order.Delivery, error) {
	var fee *kernel.Money
	if feeCents != nil {
		money, err := kernel.NewMoney(*feeCents)
		if err != nil {
			return order.Delivery{}, err
		}
		fee = &money
	}

	return order.RestoreDelivery(order.DeliveryStatus(status), fee, partnerID)
}

func feeCents(delivery order.Delivery) *int64 {
	fee := delivery.Fee()
	if fee == nil {
		return nil
	}
	cents := fee.Cents()
	return &cents
}
