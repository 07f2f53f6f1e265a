package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartLine is one product in a user's cart. A user holds at most one
// line per product; adding the same product again bumps the count.
type CartLine struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product,priority:2"`
	Count     int       `gorm:"not null"`
}

// NewCartLine creates a cart line for a user and product
func NewCartLine(userID, productID uuid.UUID, count int) (*CartLine, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if count <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &CartLine{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
		Count:      count,
	}, nil
}

// Increment adds units to the line
func (l *CartLine) Increment(count int) error {
	if count <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	l.Count += count
	l.UpdatedAt = time.Now()

	return nil
}

// SetCount replaces the line quantity
func (l *CartLine) SetCount(count int) error {
	if count <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	l.Count = count
	l.UpdatedAt = time.Now()

	return nil
}
