package catalog

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// Banner is a promotional image shown on the storefront home page
type Banner struct {
	shared.BaseEntity
	Link string `gorm:"type:varchar(500);not null"`
}

// NewBanner creates a new banner pointing at an image URL
func NewBanner(link string) (*Banner, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, shared.NewDomainError("INVALID_LINK", "Banner link cannot be empty")
	}
	if len(link) > 500 {
		return nil, shared.NewDomainError("INVALID_LINK", "Banner link cannot exceed 500 characters")
	}

	return &Banner{
		BaseEntity: shared.NewBaseEntity(),
		Link:       link,
	}, nil
}
