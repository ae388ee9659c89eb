// Package partnerrepo checks delivery partner registrations. Partner accounts
// are owned by the profile subsystem; the fulfillment core only verifies
// existence before assigning a partner.
package partnerrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DeliveryPartnerDTO represents the subset of the delivery partner record the
// fulfillment core reads.
type DeliveryPartnerDTO struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    ``
	CreatedAt time.Time ``
}

// TableName specifies the database table name for delivery partners.
func (DeliveryPartnerDTO) TableName() string {
	return "delivery_partners"
}

// GormPartnerRepository implements ports.PartnerDirectory using GORM.
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// PartnerExists reports whether a delivery partner with the given id is
// registered.
func (r *GormPartnerRepository) PartnerExists(ctx context.Context, partnerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DeliveryPartnerDTO{}).
		Where("id = ?", partnerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
