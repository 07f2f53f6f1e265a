package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RowTranslator translates rows of catalog texts into a target
// language. A nil translator serves everything in the source language.
type RowTranslator interface {
	TranslateRows(ctx context.Context, rows [][]string, language string) ([][]string, error)
}

// ProductService handles product catalog operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	translator   RowTranslator
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository, translator RowTranslator, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		translator:   translator,
		logger:       logger,
	}
}

// Create adds a new product to the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Category does not exist")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.Count, req.ActualPrice, req.OffPercent, req.BuyPrice, req.CategoryID)
	if err != nil {
		return nil, err
	}

	product.SetImages(req.Image1, req.Image2, req.Image3)
	product.SetDescription(req.Features, req.OtherDetails, req.OverviewEng, req.OverviewDe)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("title", product.Title))

	response := ToProductResponse(product, "")
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID, language string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := []ProductResponse{ToProductResponse(product, language)}
	s.translateProducts(ctx, responses, language)
	return &responses[0], nil
}

// GetByTitle retrieves a product by its URL handle
func (s *ProductService) GetByTitle(ctx context.Context, title string, language string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByTitle(ctx, catalog.DeriveTitle(title))
	if err != nil {
		return nil, err
	}

	responses := []ProductResponse{ToProductResponse(product, language)}
	s.translateProducts(ctx, responses, language)
	return &responses[0], nil
}

// List retrieves products matching the filter, newest first
func (s *ProductService) List(ctx context.Context, filter ProductListFilter, language string) ([]ProductResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:   filter.Search,
		OrderBy:  "published_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}
	if filter.InStock {
		domainFilter.Filters["in_stock"] = true
	}

	var products []catalog.Product
	var err error
	if filter.CategoryID != nil {
		products, err = s.productRepo.FindByCategory(ctx, *filter.CategoryID, domainFilter)
	} else {
		products, err = s.productRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i], language)
	}
	s.translateProducts(ctx, responses, language)

	return responses, total, nil
}

// translateProducts rewrites the visible text fields of the responses
// into the requested language, one batched provider call per page.
// Translation failure is recoverable: the source texts are served.
func (s *ProductService) translateProducts(ctx context.Context, responses []ProductResponse, language string) {
	if s.translator == nil || language == "" || len(responses) == 0 {
		return
	}

	rows := make([][]string, len(responses))
	for i := range responses {
		rows[i] = []string{responses[i].Name, responses[i].Features, responses[i].OtherDetails, responses[i].Overview}
	}

	translated, err := s.translator.TranslateRows(ctx, rows, language)
	if err != nil {
		s.logger.Warn("Serving untranslated product texts",
			zap.String("language", language),
			zap.Error(err))
		return
	}

	for i := range responses {
		responses[i].Name = translated[i][0]
		responses[i].Features = translated[i][1]
		responses[i].OtherDetails = translated[i][2]
		responses[i].Overview = translated[i][3]
	}
}

// Update modifies an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Image1 != nil || req.Image2 != nil || req.Image3 != nil {
		image1, image2, image3 := product.Image1, product.Image2, product.Image3
		if req.Image1 != nil {
			image1 = *req.Image1
		}
		if req.Image2 != nil {
			image2 = *req.Image2
		}
		if req.Image3 != nil {
			image3 = *req.Image3
		}
		product.SetImages(image1, image2, image3)
	}

	if req.Count != nil {
		if err := product.SetStock(*req.Count); err != nil {
			return nil, err
		}
	}

	if req.ActualPrice != nil || req.OffPercent != nil || req.BuyPrice != nil {
		actual, off, buy := product.ActualPrice, product.OffPercent, product.BuyPrice
		if req.ActualPrice != nil {
			actual = *req.ActualPrice
		}
		if req.OffPercent != nil {
			off = *req.OffPercent
		}
		if req.BuyPrice != nil {
			buy = *req.BuyPrice
		}
		if err := product.SetPricing(actual, off, buy); err != nil {
			return nil, err
		}
	}

	if req.Features != nil || req.OtherDetails != nil || req.OverviewEng != nil || req.OverviewDe != nil {
		features, details, eng, de := product.Features, product.OtherDetails, product.OverviewEng, product.OverviewDe
		if req.Features != nil {
			features = *req.Features
		}
		if req.OtherDetails != nil {
			details = *req.OtherDetails
		}
		if req.OverviewEng != nil {
			eng = *req.OverviewEng
		}
		if req.OverviewDe != nil {
			de = *req.OverviewDe
		}
		product.SetDescription(features, details, eng, de)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category does not exist")
			}
			return nil, err
		}
		if err := product.MoveToCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product, "")
	return &response, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
