package shopping

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines persistence operations for cart lines
type CartRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]CartLine, error)
	FindLine(ctx context.Context, userID, productID uuid.UUID) (*CartLine, error)
	// Upsert inserts the line or, when the user already carries the
	// product, adds the line's count to the stored one.
	Upsert(ctx context.Context, line *CartLine) error
	RemoveLine(ctx context.Context, userID, productID uuid.UUID) error
	ClearUser(ctx context.Context, userID uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
