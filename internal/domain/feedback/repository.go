package feedback

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CommentRepository defines persistence operations for product comments
type CommentRepository interface {
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]Comment, error)
	AverageRating(ctx context.Context, productID uuid.UUID) (float64, error)
	Save(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewRepository defines persistence operations for order reviews
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	FindByOrderID(ctx context.Context, orderID string) ([]Review, error)
	FindByUser(ctx context.Context, userEmail string, filter shared.Filter) ([]Review, error)
	Save(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}
