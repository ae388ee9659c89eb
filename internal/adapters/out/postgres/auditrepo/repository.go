package auditrepo

import (
	"context"

	"artmarket/internal/core/domain/model/audit"
	"artmarket/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAuditRepository implements ports.AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Add appends an override record to the trail.
func (r *GormAuditRepository) Add(ctx context.Context, record *audit.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrder retrieves every override recorded for an order, oldest first.
func (r *GormAuditRepository) GetByOrder(ctx context.Context, ref kernel.OrderRef) ([]*audit.Record, error) {
	var dtos []AuditRecordDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND order_kind = ?", ref.ID(), int(ref.Kind())).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*audit.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := toDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return records, nil
}
