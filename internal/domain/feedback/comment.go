package feedback

import (
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Rating bounds for product comments
const (
	MinRating = 1
	MaxRating = 5
)

// Comment is a rated customer opinion attached to a product page
type Comment struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null"`
}

// NewComment creates a new product comment
func NewComment(userID, productID uuid.UUID, text string, rating int) (*Comment, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, shared.NewDomainError("INVALID_TEXT", "Comment text cannot be empty")
	}
	if rating < MinRating || rating > MaxRating {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}

	return &Comment{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
		Text:       text,
		Rating:     rating,
	}, nil
}
