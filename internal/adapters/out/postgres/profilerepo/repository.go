// Package profilerepo reads artist profile addresses. Pickup addresses are
// resolved live from the profile row, never denormalized onto orders, so an
// artist who moves is picked up at the new address.
package profilerepo

import (
	"context"
	"errors"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// ArtistProfileDTO represents the subset of the artist profile the fulfillment
// core reads. The profile subsystem owns writes to this table.
type ArtistProfileDTO struct {
	ArtistID int64  `gorm:"primaryKey"`
	Street   string ``
	City     string ``
	State    string ``
	Zip      string ``
}

// TableName specifies the database table name for artist profiles.
func (ArtistProfileDTO) TableName() string {
	return "artist_profiles"
}

// GormProfileRepository implements services.ArtistAddressProvider using GORM.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// GetArtistAddress returns the artist's registered address.
// Returns ObjectNotFoundError when the artist has no profile row.
func (r *GormProfileRepository) GetArtistAddress(ctx context.Context, artistID int64) (kernel.Address, error) {
	var dto ArtistProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "artist_id = ?", artistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Address{}, errs.NewObjectNotFoundError("artistProfile", artistID)
		}
		return kernel.Address{}, err
	}

	return kernel.NewAddress(dto.Street, dto.City, dto.State, dto.Zip)
}
