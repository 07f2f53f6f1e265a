package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]Category, error)
	FindRoots(ctx context.Context) ([]Category, error)
	// FindDefault returns the fallback category for orphaned products
	FindDefault(ctx context.Context) (*Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	// PromoteChildren turns every child of the given category into a root category
	PromoteChildren(ctx context.Context, parentID uuid.UUID) error
}

// BannerRepository defines persistence operations for banners
type BannerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Banner, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Banner, error)
	Save(ctx context.Context, banner *Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
}
