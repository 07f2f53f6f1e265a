package shopping

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// OrderHistoryRepository defines persistence operations for purchase records
type OrderHistoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderHistory, error)
	FindByOrderID(ctx context.Context, orderID string) ([]OrderHistory, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) ([]OrderHistory, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]OrderHistory, error)
	// FindByDelivered lists records filtered on the delivered flag
	FindByDelivered(ctx context.Context, delivered bool, filter shared.Filter) ([]OrderHistory, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, record *OrderHistory) error
	SaveAll(ctx context.Context, records []*OrderHistory) error
}
