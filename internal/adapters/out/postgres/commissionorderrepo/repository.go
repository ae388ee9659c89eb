package commissionorderrepo

import (
	"context"
	"errors"

	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCommissionOrderRepository implements ports.CommissionOrderRepository
// using GORM.
type GormCommissionOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(ref string, aggregate any)
}

// NewGormCommissionOrderRepository creates a new GORM commission order
// repository.
func NewGormCommissionOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCommissionOrderRepository {
	return &GormCommissionOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new commission order to the database.
func (r *GormCommissionOrderRepository) Add(ctx context.Context, aggregate *order.CommissionOrder) error {
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

// Get retrieves a commission order by id.
func (r *GormCommissionOrderRepository) Get(ctx context.Context, id int64) (*order.CommissionOrder, error) {
	var dto CommissionOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("commissionOrder", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateDelivery writes the delivery columns in one statement conditioned on
// the stored status still matching the status the aggregate was loaded with.
// See catalogorderrepo for the conflict classification.
func (r *GormCommissionOrderRepository) UpdateDelivery(ctx context.Context, aggregate *order.CommissionOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	delivery := aggregate.Delivery()
	result := r.db.WithContext(ctx).Model(&CommissionOrderDTO{}).
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

func (r *GormCommissionOrderRepository) classifyConflict(ctx context.Context, aggregate *order.CommissionOrder) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&CommissionOrderDTO{}).
		Where("id = ?", aggregate.Ref().ID()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("commissionOrder", aggregate.Ref().ID())
	}

	return errs.NewInvalidStateError("updateDelivery", aggregate.LoadedDeliveryStatus().String())
}
