package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBannerRepository implements BannerRepository using GORM
type GormBannerRepository struct {
	db *gorm.DB
}

// NewGormBannerRepository creates a new GormBannerRepository
func NewGormBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// FindByID finds a banner by its ID
func (r *GormBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Banner, error) {
	var banner catalog.Banner
	if err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &banner, nil
}

// FindAll finds all banners matching the filter
func (r *GormBannerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Banner, error) {
	var banners []catalog.Banner
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Banner{}), filter)

	if err := query.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// Save creates or updates a banner
func (r *GormBannerRepository) Save(ctx context.Context, banner *catalog.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

// Delete deletes a banner
func (r *GormBannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Banner{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormBannerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	}

	return query
}

// Ensure GormBannerRepository implements BannerRepository
var _ catalog.BannerRepository = (*GormBannerRepository)(nil)
