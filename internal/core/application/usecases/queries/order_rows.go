package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// loadCatalogOrder scans a catalog order row plus its items and restores the
// aggregate. Returns ObjectNotFoundError when no row matches.
func loadCatalogOrder(ctx context.Context, db *gorm.DB, id int64) (*order.CatalogOrder, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			total_amount_cents,
			ship_street,
			ship_city,
			ship_state,
			ship_zip,
			delivery_status,
			shipping_fee_cents,
			delivery_partner_id,
			created_at
		FROM catalog_orders
		WHERE id = ?
	`, id).Row()

	var (
		orderID, buyerID, totalCents int64
		street, city, state, zip     string
		status                       int
		feeCents, partnerID          sql.NullInt64
		createdAt                    time.Time
	)
	err := row.Scan(&orderID, &buyerID, &totalCents, &street, &city, &state, &zip,
		&status, &feeCents, &partnerID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("catalogOrder", id)
	}
	if err != nil {
		return nil, err
	}

	items, err := loadCatalogOrderItems(ctx, db, orderID)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(totalCents)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress(street, city, state, zip)
	if err != nil {
		return nil, err
	}
	delivery, err := restoreDeliveryFields(status, feeCents, partnerID)
	if err != nil {
		return nil, err
	}

	return order.RestoreCatalogOrder(orderID, buyerID, items, totalAmount, address, createdAt, delivery)
}

func loadCatalogOrderItems(ctx context.Context, db *gorm.DB, orderID int64) ([]order.OrderItem, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			artwork_id,
			artist_id,
			quantity,
			unit_price_cents
		FROM catalog_order_items
		WHERE catalog_order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]order.OrderItem, 0)
	for rows.Next() {
		var (
			artworkID, artistID, priceCents int64
			quantity                        int
		)
		if err = rows.Scan(&artworkID, &artistID, &quantity, &priceCents); err != nil {
			return nil, err
		}

		unitPrice, priceErr := kernel.NewMoney(priceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewOrderItem(artworkID, artistID, quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// loadCommissionOrder scans a commission order row and restores the aggregate.
// Returns ObjectNotFoundError when no row matches.
func loadCommissionOrder(ctx context.Context, db *gorm.DB, id int64) (*order.CommissionOrder, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			artist_id,
			title,
			medium,
			style,
			budget_cents,
			deadline,
			rejection_reason,
			responded_at,
			ship_street,
			ship_city,
			ship_state,
			ship_zip,
			delivery_status,
			shipping_fee_cents,
			delivery_partner_id,
			created_at
		FROM commission_orders
		WHERE id = ?
	`, id).Row()

	var (
		orderID, buyerID, artistID, budgetCents int64
		title, medium, style                    string
		deadline, respondedAt                   sql.NullTime
		rejectionReason                         sql.NullString
		street, city, state, zip                string
		status                                  int
		feeCents, partnerID                     sql.NullInt64
		createdAt                               time.Time
	)
	err := row.Scan(&orderID, &buyerID, &artistID, &title, &medium, &style, &budgetCents,
		&deadline, &rejectionReason, &respondedAt, &street, &city, &state, &zip,
		&status, &feeCents, &partnerID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("commissionOrder", id)
	}
	if err != nil {
		return nil, err
	}

	budget, err := kernel.NewMoney(budgetCents)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress(street, city, state, zip)
	if err != nil {
		return nil, err
	}
	delivery, err := restoreDeliveryFields(status, feeCents, partnerID)
	if err != nil {
		return nil, err
	}

	return order.RestoreCommissionOrder(orderID, buyerID, artistID, title, medium, style, budget,
		nullTimePtr(deadline), nullStringPtr(rejectionReason), nullTimePtr(respondedAt),
		address, createdAt, delivery)
}

func restoreDeliveryFields(status int, feeCents, partnerID sql.NullInt64) (order.Delivery, error) {
	var fee *kernel.Money
	if feeCents.Valid {
		money, err := kernel.NewMoney(feeCents.Int64)
		if err != nil {
			return order.Delivery{}, err
		}
		fee = &money
	}

	var partner *int64
	if partnerID.Valid {
		id := partnerID.Int64
		partner = &id
	}

	return order.RestoreDelivery(order.DeliveryStatus(status), fee, partner)
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
