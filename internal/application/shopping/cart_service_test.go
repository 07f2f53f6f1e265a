package shopping

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCartServiceForTest() (*CartService, *MockCartRepository, *MockProductRepository) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCartService(mockCartRepo, mockProductRepo, zap.NewNop())
	return service, mockCartRepo, mockProductRepo
}

func TestCartService_Add_Success(t *testing.T) {
	service, mockCartRepo, mockProductRepo := newCartServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 5, 1000)

	mockProductRepo.On("FindByID", ctx, laptop.ID).Return(laptop, nil)
	mockCartRepo.On("Upsert", ctx, mock.AnythingOfType("*shopping.CartLine")).Return(nil)

	err := service.Add(ctx, buyer.ID, AddToCartRequest{ProductID: laptop.ID, Count: 2})

	assert.NoError(t, err)
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_Add_OutOfStock(t *testing.T) {
	service, mockCartRepo, mockProductRepo := newCartServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	soldOut := createStockedProduct(t, "Laptop", 1, 1000)
	require.NoError(t, soldOut.DecreaseStock(1))

	mockProductRepo.On("FindByID", ctx, soldOut.ID).Return(soldOut, nil)

	err := service.Add(ctx, buyer.ID, AddToCartRequest{ProductID: soldOut.ID, Count: 1})

	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	mockCartRepo.AssertNotCalled(t, "Upsert")
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	service, mockCartRepo, mockProductRepo := newCartServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 5, 1000)

	mockProductRepo.On("FindByID", ctx, laptop.ID).Return(nil, shared.ErrNotFound)

	err := service.Add(ctx, buyer.ID, AddToCartRequest{ProductID: laptop.ID, Count: 1})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockCartRepo.AssertNotCalled(t, "Upsert")
}

func TestCartService_Add_InvalidCount(t *testing.T) {
	service, mockCartRepo, mockProductRepo := newCartServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 5, 1000)

	mockProductRepo.On("FindByID", ctx, laptop.ID).Return(laptop, nil)

	err := service.Add(ctx, buyer.ID, AddToCartRequest{ProductID: laptop.ID, Count: 0})

	assert.Error(t, err)
	mockCartRepo.AssertNotCalled(t, "Upsert")
}

func TestCartService_Get_JoinsProductsAndTotals(t *testing.T) {
	service, mockCartRepo, mockProductRepo := newCartServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 5, 1000)
	mouse := createStockedProduct(t, "Mouse", 10, 20)

	laptopLine, err := shopping.NewCartLine(buyer.ID, laptop.ID, 1)
	require.NoError(t, err)
	mouseLine, err := shopping.NewCartLine(buyer.ID, mouse.ID, 3)
	require.NoError(t, err)

	mockCartRepo.On("FindByUser", ctx, buyer.ID).Return([]shopping.CartLine{*laptopLine, *mouseLine}, nil)
	mockProductRepo.On("FindByID", ctx, laptop.ID).Return(laptop, nil)
	mockProductRepo.On("FindByID", ctx, mouse.ID).Return(mouse, nil)

	cart, err := service.Get(ctx, buyer.ID)

	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "Laptop", cart.Lines[0].Name)
	assert.True(t, decimal.NewFromInt(1000).Equal(cart.Lines[0].LineTotal))
	assert.True(t, decimal.NewFromInt(60).Equal(cart.Lines[1].LineTotal))
	assert.True(t, decimal.NewFromInt(1060).Equal(cart.Total))
}

func TestCartService_Get_EmptyCart(t *testing.T) {
	service, mockCartRepo, _ := newCartServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)

	mockCartRepo.On("FindByUser", ctx, buyer.ID).Return([]shopping.CartLine{}, nil)

	cart, err := service.Get(ctx, buyer.ID)

	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.True(t, cart.Total.IsZero())
}

func TestCartService_Remove(t *testing.T) {
	service, mockCartRepo, _ := newCartServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 5, 1000)

	mockCartRepo.On("RemoveLine", ctx, buyer.ID, laptop.ID).Return(nil)

	err := service.Remove(ctx, buyer.ID, laptop.ID)

	assert.NoError(t, err)
	mockCartRepo.AssertExpectations(t)
}
