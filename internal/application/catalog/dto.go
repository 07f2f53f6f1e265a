package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateProductRequest contains the fields needed to add a product
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Image1       string          `json:"image_1"`
	Image2       string          `json:"image_2"`
	Image3       string          `json:"image_3"`
	Count        int             `json:"count"`
	ActualPrice  decimal.Decimal `json:"actual_price"`
	OffPercent   int             `json:"off_percent"`
	BuyPrice     decimal.Decimal `json:"buy_price"`
	Features     string          `json:"features"`
	OtherDetails string          `json:"other_details"`
	OverviewEng  string          `json:"overview_eng"`
	OverviewDe   string          `json:"overview_de"`
	CategoryID   uuid.UUID       `json:"category_id"`
}

// UpdateProductRequest contains the updatable product fields
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Image1       *string          `json:"image_1"`
	Image2       *string          `json:"image_2"`
	Image3       *string          `json:"image_3"`
	Count        *int             `json:"count"`
	ActualPrice  *decimal.Decimal `json:"actual_price"`
	OffPercent   *int             `json:"off_percent"`
	BuyPrice     *decimal.Decimal `json:"buy_price"`
	Features     *string          `json:"features"`
	OtherDetails *string          `json:"other_details"`
	OverviewEng  *string          `json:"overview_eng"`
	OverviewDe   *string          `json:"overview_de"`
	CategoryID   *uuid.UUID       `json:"category_id"`
}

// ProductListFilter narrows product listings
type ProductListFilter struct {
	Search     string
	CategoryID *uuid.UUID
	InStock    bool
	Page       int
	PageSize   int
}

// ProductResponse is the API representation of a product
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Title        string          `json:"title"`
	Image1       string          `json:"image_1"`
	Image2       string          `json:"image_2"`
	Image3       string          `json:"image_3"`
	Count        int             `json:"count"`
	InStock      bool            `json:"in_stock"`
	ActualPrice  decimal.Decimal `json:"actual_price"`
	OffPercent   int             `json:"off_percent"`
	BuyPrice     decimal.Decimal `json:"buy_price"`
	Features     string          `json:"features"`
	OtherDetails string          `json:"other_details"`
	Overview     string          `json:"overview"`
	CategoryID   uuid.UUID       `json:"category_id"`
	PublishedAt  time.Time       `json:"published_at"`
}

// ToProductResponse maps a product to its API representation for a language
func ToProductResponse(product *catalog.Product, language string) ProductResponse {
	return ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Title:        product.Title,
		Image1:       product.Image1,
		Image2:       product.Image2,
		Image3:       product.Image3,
		Count:        product.Count,
		InStock:      product.InStock(),
		ActualPrice:  product.ActualPrice,
		OffPercent:   product.OffPercent,
		BuyPrice:     product.BuyPrice,
		Features:     product.Features,
		OtherDetails: product.OtherDetails,
		Overview:     product.Overview(language),
		CategoryID:   product.CategoryID,
		PublishedAt:  product.PublishedAt,
	}
}

// CreateCategoryRequest contains the fields needed to add a category
type CreateCategoryRequest struct {
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// CategoryResponse is the API representation of a category
type CategoryResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parent_id"`
	IsSub     bool       `json:"is_sub"`
	IsDefault bool       `json:"is_default"`
}

// CategoryTreeNode is a category with its direct children
type CategoryTreeNode struct {
	CategoryResponse
	Children []CategoryResponse `json:"children"`
}

// ToCategoryResponse maps a category to its API representation
func ToCategoryResponse(category *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		ParentID:  category.ParentID,
		IsSub:     category.IsSub(),
		IsDefault: category.IsDefault,
	}
}

// BannerResponse is the API representation of a banner
type BannerResponse struct {
	ID   uuid.UUID `json:"id"`
	Link string    `json:"link"`
}

// ToBannerResponse maps a banner to its API representation
func ToBannerResponse(banner *catalog.Banner) BannerResponse {
	return BannerResponse{
		ID:   banner.ID,
		Link: banner.Link,
	}
}
