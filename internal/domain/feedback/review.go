package feedback

import (
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

// Review is buyer feedback on a completed order, keyed by the
// purchased order id rather than a product.
type Review struct {
	shared.BaseEntity
	UserEmail string `gorm:"type:varchar(255);not null;index"`
	OrderID   string `gorm:"type:varchar(36);not null;index"`
	Text      string `gorm:"type:text;not null"`
}

// NewReview creates a new order review
func NewReview(userEmail, orderID, text string) (*Review, error) {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return nil, shared.NewDomainError("INVALID_USER", "User email cannot be empty")
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_ID", "Order ID cannot be empty")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, shared.NewDomainError("INVALID_TEXT", "Review text cannot be empty")
	}

	return &Review{
		BaseEntity: shared.NewBaseEntity(),
		UserEmail:  strings.ToLower(userEmail),
		OrderID:    orderID,
		Text:       text,
	}, nil
}

// UpdateText replaces the review text
func (r *Review) UpdateText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return shared.NewDomainError("INVALID_TEXT", "Review text cannot be empty")
	}

	r.Text = text
	r.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy reports whether the review was written by the given user
func (r *Review) IsOwnedBy(userEmail string) bool {
	return r.UserEmail == strings.ToLower(strings.TrimSpace(userEmail))
}
