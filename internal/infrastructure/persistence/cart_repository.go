package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUser finds all cart lines belonging to a user
func (r *GormCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]shopping.CartLine, error) {
	var lines []shopping.CartLine
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindLine finds a single cart line of a user for a product
func (r *GormCartRepository) FindLine(ctx context.Context, userID, productID uuid.UUID) (*shopping.CartLine, error) {
	var line shopping.CartLine
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// Upsert inserts the line or adds its count to an existing line of the
// same user and product
func (r *GormCartRepository) Upsert(ctx context.Context, line *shopping.CartLine) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":      gorm.Expr("cart_lines.count + excluded.count"),
				"updated_at": line.UpdatedAt,
			}),
		}).
		Create(line).Error
}

// RemoveLine deletes a user's cart line for a product. Removing a line
// that does not exist succeeds silently.
func (r *GormCartRepository) RemoveLine(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&shopping.CartLine{}).Error
}

// ClearUser removes every cart line of a user
func (r *GormCartRepository) ClearUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&shopping.CartLine{}).Error
}

// CountByUser counts the cart lines of a user
func (r *GormCartRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&shopping.CartLine{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCartRepository implements CartRepository
var _ shopping.CartRepository = (*GormCartRepository)(nil)
