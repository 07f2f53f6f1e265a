package persistence

import (
	"context"
	"errors"

	"github.com/storefront/backend/internal/domain/i18n"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBundleRepository implements BundleRepository using GORM. The
// storefront keeps a single source-language bundle row.
type GormBundleRepository struct {
	db *gorm.DB
}

// NewGormBundleRepository creates a new GormBundleRepository
func NewGormBundleRepository(db *gorm.DB) *GormBundleRepository {
	return &GormBundleRepository{db: db}
}

// Get returns the storefront's source-language bundle
func (r *GormBundleRepository) Get(ctx context.Context) (*i18n.LocalizationBundle, error) {
	var bundle i18n.LocalizationBundle
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&bundle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bundle, nil
}

// Save creates or updates the bundle
func (r *GormBundleRepository) Save(ctx context.Context, bundle *i18n.LocalizationBundle) error {
	return r.db.WithContext(ctx).Save(bundle).Error
}

// Ensure GormBundleRepository implements BundleRepository
var _ i18n.BundleRepository = (*GormBundleRepository)(nil)
