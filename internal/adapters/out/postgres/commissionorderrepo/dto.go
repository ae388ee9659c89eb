// Package commissionorderrepo persists commission order aggregates, including
// the negotiation fields (title, medium, style, budget, deadline, response).
package commissionorderrepo

import (
	"time"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
)

// CommissionOrderDTO represents the database structure for commission orders.
type CommissionOrderDTO struct {
	ID                int64      `gorm:"primaryKey"`
	BuyerID           int64      `gorm:"index"`
	ArtistID          int64      `gorm:"index"`
	Title             string     ``
	Medium            string     ``
	Style             string     ``
	BudgetCents       int64      ``
	Deadline          *time.Time ``
	RejectionReason   *string    ``
	RespondedAt       *time.Time ``
	Shipping          AddressDTO `gorm:"embedded;embeddedPrefix:ship_"`
	DeliveryStatus    int        `gorm:"index"`
	ShippingFeeCents  *int64     ``
	DeliveryPartnerID *int64     `gorm:"index"`
	CreatedAt         time.Time  ``
}

// TableName specifies the database table name for commission orders.
func (CommissionOrderDTO) TableName() string {
	return "commission_orders"
}

// AddressDTO represents the embedded shipping address columns.
type AddressDTO struct {
	Street string
	City   string
	State  string
	Zip    string
}

func fromDomain(aggregate *order.CommissionOrder) CommissionOrderDTO {
	delivery := aggregate.Delivery()
	address := aggregate.ShippingAddress()

	return CommissionOrderDTO{
		ID:              aggregate.Ref().ID(),
		BuyerID:         aggregate.BuyerID(),
		ArtistID:        aggregate.ArtistID(),
		Title:           aggregate.Title(),
		Medium:          aggregate.Medium(),
		Style:           aggregate.Style(),
		BudgetCents:     aggregate.Budget().Cents(),
		Deadline:        aggregate.Deadline(),
		RejectionReason: aggregate.RejectionReason(),
		RespondedAt:     aggregate.RespondedAt(),
		Shipping: AddressDTO{
			Street: address.Street(),
			City:   address.City(),
			State:  address.State(),
			Zip:    address.Zip(),
		},
		DeliveryStatus:    int(delivery.Status()),
		ShippingFeeCents:  feeCents(delivery),
		DeliveryPartnerID: delivery.PartnerID(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

func toDomain(dto CommissionOrderDTO) (*order.CommissionOrder, error) {
	budget, err := kernel.NewMoney(dto.BudgetCents)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress(dto.Shipping.Street, dto.Shipping.City, dto.Shipping.State, dto.Shipping.Zip)
	if err != nil {
		return nil, err
	}

	var fee *kernel.Money
	if dto.ShippingFeeCents != nil {
		money, feeErr := kernel.NewMoney(*dto.ShippingFeeCents)
		if feeErr != nil {
			return nil, feeErr
		}
		fee = &money
	}
	delivery, err := order.RestoreDelivery(order.DeliveryStatus(dto.DeliveryStatus), fee, dto.DeliveryPartnerID)
	if err != nil {
		return nil, err
	}

	return order.RestoreCommissionOrder(dto.ID, dto.BuyerID, dto.ArtistID,
		dto.Title, dto.Medium, dto.Style, budget,
		dto.Deadline, dto.RejectionReason, dto.RespondedAt,
		address, dto.CreatedAt, delivery)
}

func feeCents(delivery order.Delivery) *int64 {
	fee := delivery.Fee()
	if fee == nil {
		return nil
	}
	cents := fee.Cents()
	return &cents
}
