package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Product represents an item offered in the storefront
// It is the aggregate root for catalog operations
type Product struct {
	shared.BaseAggregateRoot
	Name         string          `gorm:"type:varchar(200);not null"`
	Title        string          `gorm:"type:varchar(200);not null;uniqueIndex"` // URL-safe handle derived from the name
	Image1       string          `gorm:"type:varchar(500)"`
	Image2       string          `gorm:"type:varchar(500)"`
	Image3       string          `gorm:"type:varchar(500)"`
	Count        int             `gorm:"not null;default:0"` // Units in stock
	ActualPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OffPercent   int             `gorm:"not null;default:0"`
	BuyPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Features     string          `gorm:"type:text"`
	OtherDetails string          `gorm:"type:text"`
	OverviewEng  string          `gorm:"type:text"`
	OverviewDe   string          `gorm:"type:text"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	PublishedAt  time.Time       `gorm:"not null;index"`
}

// NewProduct creates a new product with a derived title handle
func NewProduct(name string, count int, actualPrice decimal.Decimal, offPercent int, buyPrice decimal.Decimal, categoryID uuid.UUID) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if count < 0 {
		return nil, shared.NewDomainError("INVALID_COUNT", "Stock count cannot be negative")
	}
	if actualPrice.IsNegative() || buyPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if offPercent < 0 || offPercent > 100 {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount must be between 0 and 100 percent")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Title:             DeriveTitle(name),
		Count:             count,
		ActualPrice:       actualPrice,
		OffPercent:        offPercent,
		BuyPrice:          buyPrice,
		CategoryID:        categoryID,
		PublishedAt:       time.Now(),
	}, nil
}

// DeriveTitle converts a display name into its URL-safe handle:
// spaces become underscores and letters are lowercased.
func DeriveTitle(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

// Rename changes the product name and re-derives the title handle
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}

	p.Name = name
	p.Title = DeriveTitle(name)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetImages sets the three gallery image URLs
func (p *Product) SetImages(image1, image2, image3 string) {
	p.Image1 = image1
	p.Image2 = image2
	p.Image3 = image3
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetDescription sets the marketing copy for the product
func (p *Product) SetDescription(features, otherDetails, overviewEng, overviewDe string) {
	p.Features = features
	p.OtherDetails = otherDetails
	p.OverviewEng = overviewEng
	p.OverviewDe = overviewDe
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetPricing updates the price fields
func (p *Product) SetPricing(actualPrice decimal.Decimal, offPercent int, buyPrice decimal.Decimal) error {
	if actualPrice.IsNegative() || buyPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if offPercent < 0 || offPercent > 100 {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount must be between 0 and 100 percent")
	}

	p.ActualPrice = actualPrice
	p.OffPercent = offPercent
	p.BuyPrice = buyPrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetStock replaces the stock count
func (p *Product) SetStock(count int) error {
	if count < 0 {
		return shared.NewDomainError("INVALID_COUNT", "Stock count cannot be negative")
	}

	p.Count = count
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// DecreaseStock removes purchased units from stock
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if quantity > p.Count {
		return shared.ErrInsufficientStock
	}

	p.Count -= quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// MoveToCategory reassigns the product to another category
func (p *Product) MoveToCategory(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}

	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// InStock reports whether at least one unit is available
func (p *Product) InStock() bool {
	return p.Count > 0
}

// Overview returns the overview text for the requested language,
// falling back to English for unknown languages.
func (p *Product) Overview(language string) string {
	if strings.EqualFold(language, "de") && p.OverviewDe != "" {
		return p.OverviewDe
	}
	return p.OverviewEng
}
