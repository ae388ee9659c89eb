package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"artmarket/internal/core/application/usecases/queries"
	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/pkg/errs"
)

// acceptDeliveryRequest is the body of POST /delivery/accept. The partner id
// is implied by the bearer token; when the body carries one anyway it must
// match the authenticated caller.
type acceptDeliveryRequest struct {
	OrderKind         string `json:"orderKind" validate:"required,oneof=catalog commission"`
	OrderID           int64  `json:"orderId" validate:"required,gt=0"`
	ShippingFee       int64  `json:"shippingFee" validate:"gte=0"`
	DeliveryPartnerID int64  `json:"deliveryPartnerId" validate:"omitempty,gt=0"`
}

// overrideDeliveryStatusRequest is the body of the admin override endpoint.
type overrideDeliveryStatusRequest struct {
	NewStatus   string `json:"newStatus" validate:"required"`
	ShippingFee *int64 `json:"shippingFee" validate:"omitempty,gte=0"`
	Reason      string `json:"reason" validate:"required"`
}

// acceptDeliveryResponse mirrors the acceptance contract: the captured fee is
// echoed back so the partner can confirm what was recorded.
type acceptDeliveryResponse struct {
	Success     bool   `json:"success"`
	OrderID     int64  `json:"orderId"`
	OrderKind   string `json:"orderKind"`
	ShippingFee int64  `json:"shippingFee"`
}

// addressView is the wire form of a resolved address.
type addressView struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// orderDeliveryView is the wire form of a single order's delivery info.
type orderDeliveryView struct {
	OrderID           int64        `json:"orderId"`
	OrderKind         string       `json:"orderKind"`
	Status            string       `json:"status"`
	ShippingFee       *int64       `json:"shippingFee,omitempty"`
	DeliveryPartnerID *int64       `json:"deliveryPartnerId,omitempty"`
	TotalAmount       int64        `json:"totalAmount"`
	CreatedAt         time.Time    `json:"createdAt"`
	PickupAddress     *addressView `json:"pickupAddress,omitempty"`
	DropoffAddress    addressView  `json:"dropoffAddress"`
}

// deliveryRequestView is one row of the aggregated pending/active/delivered
// views.
type deliveryRequestView struct {
	OrderID           int64     `json:"orderId"`
	OrderKind         string    `json:"orderKind"`
	Status            string    `json:"status"`
	BuyerID           int64     `json:"buyerId"`
	ArtistID          int64     `json:"artistId"`
	ShippingFee       *int64    `json:"shippingFee,omitempty"`
	DeliveryPartnerID *int64    `json:"deliveryPartnerId,omitempty"`
	TotalAmount       int64     `json:"totalAmount"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toOrderDeliveryView(response queries.GetDeliveryInfoQueryResponse) orderDeliveryView {
	view := orderDeliveryView{
		OrderID:           response.OrderID,
		OrderKind:         response.OrderKind,
		Status:            response.Status,
		ShippingFee:       response.ShippingFeeCents,
		DeliveryPartnerID: response.DeliveryPartnerID,
		TotalAmount:       response.TotalAmountCents,
		CreatedAt:         response.CreatedAt,
		DropoffAddress:    toAddressView(response.DropoffAddress),
	}
	if response.PickupAddress != nil {
		pickup := toAddressView(*response.PickupAddress)
		view.PickupAddress = &pickup
	}
	return view
}

func toAddressView(address queries.AddressResponse) addressView {
	return addressView{
		Street: address.Street,
		City:   address.City,
		State:  address.State,
		Zip:    address.Zip,
	}
}

func toDeliveryRequestViews(responses []queries.DeliveryRequestResponse) []deliveryRequestView {
	views := make([]deliveryRequestView, 0, len(responses))
	for _, response := range responses {
		views = append(views, deliveryRequestView{
			OrderID:           response.OrderID,
			OrderKind:         response.OrderKind,
			Status:            response.Status,
			BuyerID:           response.BuyerID,
			ArtistID:          response.ArtistID,
			ShippingFee:       response.ShippingFeeCents,
			DeliveryPartnerID: response.DeliveryPartnerID,
			TotalAmount:       response.TotalAmountCents,
			CreatedAt:         response.CreatedAt,
		})
	}
	return views
}

// orderRefFromPath parses the :orderKind and :orderId path segments.
func orderRefFromPath(ctx echo.Context) (kernel.OrderRef, error) {
	kind, err := kernel.ParseOrderKind(ctx.Param("orderKind"))
	if err != nil {
		return kernel.OrderRef{}, err
	}
	return orderRefForKind(ctx, kind)
}

// orderRefForKind parses the :orderId path segment for a route whose order
// kind is fixed.
func orderRefForKind(ctx echo.Context, kind kernel.OrderKind) (kernel.OrderRef, error) {
	id, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		return kernel.OrderRef{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return kernel.NewOrderRef(id, kind)
}

// optionalIDParam parses an optional positive numeric query parameter.
func optionalIDParam(ctx echo.Context, name string) (*int64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &id, nil
}
