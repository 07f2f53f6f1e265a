package shopping

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"go.uber.org/zap"
)

// CartService handles cart operations
type CartService struct {
	cartRepo    shopping.CartRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(cartRepo shopping.CartRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Add puts units of a product into the user's cart. Adding a product
// the cart already holds increases the stored count instead of
// creating a second line.
func (s *CartService) Add(ctx context.Context, userID uuid.UUID, req AddToCartRequest) error {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return err
	}
	if !product.InStock() {
		return shared.ErrInsufficientStock
	}

	line, err := shopping.NewCartLine(userID, req.ProductID, req.Count)
	if err != nil {
		return err
	}

	if err := s.cartRepo.Upsert(ctx, line); err != nil {
		return err
	}

	s.logger.Debug("Cart line upserted",
		zap.String("user_id", userID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.Int("count", req.Count))

	return nil
}

// Remove drops a product from the user's cart. Removing a product the
// cart does not hold is a no-op.
func (s *CartService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return s.cartRepo.RemoveLine(ctx, userID, productID)
}

// Get returns the user's cart joined with product details and its total
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	lines, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := &CartResponse{
		Lines: make([]CartLineResponse, 0, len(lines)),
		Total: decimal.Zero,
	}

	for i := range lines {
		product, err := s.productRepo.FindByID(ctx, lines[i].ProductID)
		if err != nil {
			return nil, err
		}

		lineTotal := product.BuyPrice.Mul(decimal.NewFromInt(int64(lines[i].Count)))
		response.Lines = append(response.Lines, CartLineResponse{
			ProductID: product.ID,
			Name:      product.Name,
			Title:     product.Title,
			Image:     product.Image1,
			UnitPrice: product.BuyPrice,
			Count:     lines[i].Count,
			LineTotal: lineTotal,
			InStock:   product.InStock(),
		})
		response.Total = response.Total.Add(lineTotal)
	}

	return response, nil
}

// Count returns the number of lines in the user's cart
func (s *CartService) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.cartRepo.CountByUser(ctx, userID)
}
