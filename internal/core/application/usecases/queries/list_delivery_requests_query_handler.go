package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListDeliveryRequestsQueryHandler is the Request Aggregator: it queries both
// order kinds, normalizes the rows into one shape, and merges them
// newest-first. One kind's query failure degrades to partial results with a
// logged omission instead of failing the whole view; the endpoint backs
// dashboards, where stale-but-present beats all-or-nothing.
//
// Example:
//
//	handler := NewListDeliveryRequestsQueryHandler(db, logger)
//	query, _ := NewListDeliveryRequestsQuery(BucketPending, nil, nil, nil)
//	requests, err := handler.Handle(ctx, query)
type ListDeliveryRequestsQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewListDeliveryRequestsQueryHandler creates a handler for aggregated
// delivery request views.
func NewListDeliveryRequestsQueryHandler(db *gorm.DB, logger *slog.Logger) ListDeliveryRequestsQueryHandler {
	return ListDeliveryRequestsQueryHandler{
		db:     db,
		logger: logger.With("component", "ListDeliveryRequestsQueryHandler"),
	}
}

// Handle executes the aggregator query.
// Results are ordered newest first, ties broken by order id ascending and then
// kind, so pagination-free clients see a deterministic list. Returns an error
// only when both kinds fail.
func (h ListDeliveryRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveryRequestsQuery,
) ([]DeliveryRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]DeliveryRequestResponse, 0)

	catalogRows, catalogErr := h.listCatalog(ctx, query)
	if catalogErr != nil {
		h.logger.WarnContext(ctx, "omitting catalog orders from aggregated view",
			"bucket", query.Bucket().String(),
			"error", catalogErr,
		)
	} else {
		requests = append(requests, catalogRows...)
	}

	commissionRows, commissionErr := h.listCommission(ctx, query)
	if commissionErr != nil {
		h.logger.WarnContext(ctx, "omitting commission orders from aggregated view",
			"bucket", query.Bucket().String(),
			"error", commissionErr,
		)
	} else {
		requests = append(requests, commissionRows...)
	}

	if catalogErr != nil && commissionErr != nil {
		return nil, errors.Join(catalogErr, commissionErr)
	}

	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}
		if requests[i].OrderID != requests[j].OrderID {
			return requests[i].OrderID < requests[j].OrderID
		}
		return requests[i].OrderKind < requests[j].OrderKind
	})

	return requests, nil
}

func (h ListDeliveryRequestsQueryHandler) listCatalog(
	ctx context.Context,
	query ListDeliveryRequestsQuery,
) ([]DeliveryRequestResponse, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			o.id,
			o.buyer_id,
			(SELECT i.artist_id
			   FROM catalog_order_items i
			  WHERE i.catalog_order_id = o.id
			  ORDER BY i.position
			  LIMIT 1),
			o.total_amount_cents,
			o.delivery_status,
			o.shipping_fee_cents,
			o.delivery_partner_id,
			o.created_at
		FROM catalog_orders o
		WHERE o.delivery_status IN (?)
	`)
	args := []any{statusValues(query.Bucket())}

	if query.ArtistID() != nil {
		sb.WriteString(` AND EXISTS (
			SELECT 1 FROM catalog_order_items i
			WHERE i.catalog_order_id = o.id AND i.artist_id = ?
		)`)
		args = append(args, *query.ArtistID())
	}
	if query.BuyerID() != nil {
		sb.WriteString(" AND o.buyer_id = ?")
		args = append(args, *query.BuyerID())
	}
	if query.PartnerID() != nil {
		sb.WriteString(" AND o.delivery_partner_id = ?")
		args = append(args, *query.PartnerID())
	}
	sb.WriteString(" ORDER BY o.created_at DESC, o.id")

	return h.scanRequests(ctx, sb.String(), args, kernel.CatalogOrder)
}

func (h ListDeliveryRequestsQueryHandler) listCommission(
	ctx context.Context,
	query ListDeliveryRequestsQuery,
) ([]DeliveryRequestResponse, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			id,
			buyer_id,
			artist_id,
			budget_cents,
			delivery_status,
			shipping_fee_cents,
			delivery_partner_id,
			created_at
		FROM commission_orders
		WHERE delivery_status IN (?)
	`)
	args := []any{statusValues(query.Bucket())}

	if query.ArtistID() != nil {
		sb.WriteString(" AND artist_id = ?")
		args = append(args, *query.ArtistID())
	}
	if query.BuyerID() != nil {
		sb.WriteString(" AND buyer_id = ?")
		args = append(args, *query.BuyerID())
	}
	if query.PartnerID() != nil {
		sb.WriteString(" AND delivery_partner_id = ?")
		args = append(args, *query.PartnerID())
	}
	sb.WriteString(" ORDER BY created_at DESC, id")

	return h.scanRequests(ctx, sb.String(), args, kernel.CommissionOrder)
}

func (h ListDeliveryRequestsQueryHandler) scanRequests(
	ctx context.Context,
	sqlText string,
	args []any,
	kind kernel.OrderKind,
) ([]DeliveryRequestResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]DeliveryRequestResponse, 0)
	for rows.Next() {
		var (
			id, buyerID, artistID, totalCents int64
			status                            int
			feeCents, partnerID               sql.NullInt64
			createdAt                         time.Time
		)
		if err = rows.Scan(&id, &buyerID, &artistID, &totalCents,
			&status, &feeCents, &partnerID, &createdAt); err != nil {
			return nil, err
		}

		request := DeliveryRequestResponse{
			OrderID:          id,
			OrderKind:        kind.String(),
			Status:           order.DeliveryStatus(status).String(),
			BuyerID:          buyerID,
			ArtistID:         artistID,
			TotalAmountCents: totalCents,
			CreatedAt:        createdAt,
		}
		if feeCents.Valid {
			cents := feeCents.Int64
			request.ShippingFeeCents = &cents
		}
		if partnerID.Valid {
			partner := partnerID.Int64
			request.DeliveryPartnerID = &partner
		}

		requests = append(requests, request)
	}

	return requests, rows.Err()
}

func statusValues(bucket StatusBucket) []int {
	statuses := bucket.Statuses()
	values := make([]int, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, int(s))
	}
	return values
}
