package catalogorderrepo

import (
	"context"
	"errors"

	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogOrderRepository implements ports.CatalogOrderRepository using GORM.
type GormCatalogOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(ref string, aggregate any)
}

// NewGormCatalogOrderRepository creates a new GORM catalog order repository.
func NewGormCatalogOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogOrderRepository {
	return &GormCatalogOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog order and its items to the database.
func (r *GormCatalogOrderRepository) Add(ctx context.Context, aggregate *order.CatalogOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Ref().String(), aggregate)
	return nil
}

// Get retrieves a catalog order with its items by id.
func (r *GormCatalogOrderRepository) Get(ctx context.Context, id int64) (*order.CatalogOrder, error) {
	var dto CatalogOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("catalogOrder", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateDelivery writes the delivery columns in one statement conditioned on
// the stored status still matching the status the aggregate was loaded with.
// Zero rows affected means either the row vanished (ObjectNotFoundError) or a
// concurrent transition won the race (InvalidStateError).
func (r *GormCatalogOrderRepository) UpdateDelivery(ctx context.Context, aggregate *order.CatalogOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	delivery := aggregate.Delivery()
	result := r.db.WithContext(ctx).Model(&CatalogOrderDTO{}).
		Where("id = ? AND delivery_status = ?",
			aggregate.Ref().ID(), int(aggregate.LoadedDeliveryStatus())).
		Updates(map[string]any{
			"delivery_status":     int(delivery.Status()),
			"shipping_fee_cents":  feeCents(delivery),
			"delivery_partner_id": delivery.PartnerID(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyConflict(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.Ref().String(), aggregate)
	return nil
}

func (r *GormCatalogOrderRepository) classifyConflict(ctx context.Context, aggregate *order.CatalogOrder) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&CatalogOrderDTO{}).
		Where("id = ?", aggregate.Ref().ID()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("catalogOrder", aggregate.Ref().ID())
	}

	return errs.NewInvalidStateError("updateDelivery", aggregate.LoadedDeliveryStatus().String())
}
