package queries

import (
	"context"
	"errors"
	"log/slog"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryInfoQueryHandler serves the single-order delivery view. Restores
// the aggregate from the database, checks the caller's relationship to it,
// and enriches the response with resolved pickup and drop-off addresses.
//
// Example:
//
//	handler := NewGetDeliveryInfoQueryHandler(db, resolver, logger)
//	info, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s/%d is %s\n", info.OrderKind, info.OrderID, info.Status)
type GetDeliveryInfoQueryHandler struct {
	db       *gorm.DB
	resolver services.AddressResolver
	policy   services.AccessPolicy
	logger   *slog.Logger
}

// NewGetDeliveryInfoQueryHandler creates a handler for single-order delivery
// views.
func NewGetDeliveryInfoQueryHandler(
	db *gorm.DB,
	resolver services.AddressResolver,
	logger *slog.Logger,
) GetDeliveryInfoQueryHandler {
	return GetDeliveryInfoQueryHandler{
		db:       db,
		resolver: resolver,
		policy:   services.NewAccessPolicy(),
		logger:   logger.With("component", "GetDeliveryInfoQueryHandler"),
	}
}

// Handle executes the query.
// Returns ObjectNotFoundError when the order does not exist or the caller has
// no ownership relationship to it, and ForbiddenError on role violations.
// A missing artist profile leaves PickupAddress nil rather than failing the
// whole view.
func (h GetDeliveryInfoQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryInfoQuery,
) (GetDeliveryInfoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryInfoQueryResponse{}, err
	}

	ord, err := h.loadOrder(ctx, query.OrderRef())
	if err != nil {
		return GetDeliveryInfoQueryResponse{}, err
	}

	if err = h.policy.Authorize(query.Actor(), services.ActionView, ord); err != nil {
		return GetDeliveryInfoQueryResponse{}, err
	}

	response := GetDeliveryInfoQueryResponse{
		OrderID:          ord.Ref().ID(),
		OrderKind:        ord.Ref().Kind().String(),
		Status:           ord.Delivery().Status().String(),
		TotalAmountCents: ord.TotalAmount().Cents(),
		CreatedAt:        ord.CreatedAt(),
		DropoffAddress:   toAddressResponse(h.resolver.ResolveDropoffAddress(ord)),
	}

	if fee := ord.Delivery().Fee(); fee != nil {
		cents := fee.Cents()
		response.ShippingFeeCents = &cents
	}
	if partnerID := ord.Delivery().PartnerID(); partnerID != nil {
		id := *partnerID
		response.DeliveryPartnerID = &id
	}

	pickup, err := h.resolver.ResolvePickupAddress(ctx, ord)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		h.logger.WarnContext(ctx, "artist has no registered pickup address",
			"orderRef", ord.Ref().String(),
			"artistId", ord.PickupArtistID(),
		)
	case err != nil:
		return GetDeliveryInfoQueryResponse{}, err
	default:
		pickupResponse := toAddressResponse(pickup)
		response.PickupAddress = &pickupResponse
	}

	return response, nil
}

func (h GetDeliveryInfoQueryHandler) loadOrder(ctx context.Context, ref kernel.OrderRef) (order.Order, error) {
	if ref.Kind() == kernel.CatalogOrder {
		return loadCatalogOrder(ctx, h.db, ref.ID())
	}
	return loadCommissionOrder(ctx, h.db, ref.ID())
}

func toAddressResponse(address kernel.Address) AddressResponse {
	return AddressResponse{
		Street: address.Street(),
		City:   address.City(),
		State:  address.State(),
		Zip:    address.Zip(),
	}
}
