package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/feedback"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*feedback.Review, error) {
	var review feedback.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindByOrderID finds the reviews left on one order
func (r *GormReviewRepository) FindByOrderID(ctx context.Context, orderID string) ([]feedback.Review, error) {
	var reviews []feedback.Review
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByUser finds the reviews written by a user
func (r *GormReviewRepository) FindByUser(ctx context.Context, userEmail string, filter shared.Filter) ([]feedback.Review, error) {
	var reviews []feedback.Review
	query := r.db.WithContext(ctx).
		Model(&feedback.Review{}).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(userEmail)))

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("created_at DESC")

	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, review *feedback.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

// Delete deletes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&feedback.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormReviewRepository implements ReviewRepository
var _ feedback.ReviewRepository = (*GormReviewRepository)(nil)
