package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/feedback"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCommentRepository implements CommentRepository using GORM
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// FindByProduct finds the comments left on a product
func (r *GormCommentRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]feedback.Comment, error) {
	var comments []feedback.Comment
	query := r.db.WithContext(ctx).
		Model(&feedback.Comment{}).
		Where("product_id = ?", productID)

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
	} else {
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// AverageRating computes the mean rating of a product's comments
func (r *GormCommentRepository) AverageRating(ctx context.Context, productID uuid.UUID) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).
		Model(&feedback.Comment{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	return avg, nil
}

// Save creates or updates a comment
func (r *GormCommentRepository) Save(ctx context.Context, comment *feedback.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete deletes a comment
func (r *GormCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&feedback.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCommentRepository implements CommentRepository
var _ feedback.CommentRepository = (*GormCommentRepository)(nil)
