package shopping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockCartRepository is a mock implementation of CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]shopping.CartLine, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]shopping.CartLine), args.Error(1)
}

func (m *MockCartRepository) FindLine(ctx context.Context, userID, productID uuid.UUID) (*shopping.CartLine, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.CartLine), args.Error(1)
}

func (m *MockCartRepository) Upsert(ctx context.Context, line *shopping.CartLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveLine(ctx context.Context, userID, productID uuid.UUID) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockCartRepository) ClearUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderHistoryRepository is a mock implementation of OrderHistoryRepository
type MockOrderHistoryRepository struct {
	mock.Mock
}

func (m *MockOrderHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.OrderHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.OrderHistory), args.Error(1)
}

func (m *MockOrderHistoryRepository) FindByOrderID(ctx context.Context, orderID string) ([]shopping.OrderHistory, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]shopping.OrderHistory), args.Error(1)
}

func (m *MockOrderHistoryRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) ([]shopping.OrderHistory, error) {
	args := m.Called(ctx, buyerID, filter)
	return args.Get(0).([]shopping.OrderHistory), args.Error(1)
}

func (m *MockOrderHistoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shopping.OrderHistory, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shopping.OrderHistory), args.Error(1)
}

func (m *MockOrderHistoryRepository) FindByDelivered(ctx context.Context, delivered bool, filter shared.Filter) ([]shopping.OrderHistory, error) {
	args := m.Called(ctx, delivered, filter)
	return args.Get(0).([]shopping.OrderHistory), args.Error(1)
}

func (m *MockOrderHistoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderHistoryRepository) Save(ctx context.Context, record *shopping.OrderHistory) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOrderHistoryRepository) SaveAll(ctx context.Context, records []*shopping.OrderHistory) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of the catalog ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByTitle(ctx context.Context, title string) (*catalog.Product, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uuid.UUID) error {
	args := m.Called(ctx, fromCategoryID, toCategoryID)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of the identity UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Test helpers
func createTestBuyer(t *testing.T) *identity.User {
	t.Helper()

	user, err := identity.NewUser("Jane Shopper", "jane@example.com", "secret-pass-123", "0123456789")
	require.NoError(t, err)
	return user
}

func createStockedProduct(t *testing.T, name string, stock int, price int64) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(name, stock,
		decimal.NewFromInt(price), 0, decimal.NewFromInt(price), uuid.New())
	require.NoError(t, err)
	return product
}

func newOrderServiceForTest() (*OrderService, *MockOrderHistoryRepository, *MockUserRepository, *MockCartRepository, *MockProductRepository) {
	mockOrderRepo := new(MockOrderHistoryRepository)
	mockUserRepo := new(MockUserRepository)
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	txScope := NewNoOpTransactionScope(mockCartRepo, mockOrderRepo, mockProductRepo)
	service := NewOrderService(mockOrderRepo, mockUserRepo, txScope, zap.NewNop())
	return service, mockOrderRepo, mockUserRepo, mockCartRepo, mockProductRepo
}

func TestOrderService_Checkout_Success(t *testing.T) {
	service, mockOrderRepo, mockUserRepo, mockCartRepo, mockProductRepo := newOrderServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 5, 1000)
	mouse := createStockedProduct(t, "Mouse", 10, 20)

	laptopLine, err := shopping.NewCartLine(buyer.ID, laptop.ID, 1)
	require.NoError(t, err)
	mouseLine, err := shopping.NewCartLine(buyer.ID, mouse.ID, 2)
	require.NoError(t, err)

	var saved []*shopping.OrderHistory
	mockUserRepo.On("FindByID", ctx, buyer.ID).Return(buyer, nil)
	mockCartRepo.On("FindByUser", ctx, buyer.ID).Return([]shopping.CartLine{*laptopLine, *mouseLine}, nil)
	mockProductRepo.On("FindByID", ctx, laptop.ID).Return(laptop, nil)
	mockProductRepo.On("FindByID", ctx, mouse.ID).Return(mouse, nil)
	mockProductRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)
	mockOrderRepo.On("SaveAll", ctx, mock.AnythingOfType("[]*shopping.OrderHistory")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]*shopping.OrderHistory)
		}).
		Return(nil)
	mockCartRepo.On("ClearUser", ctx, buyer.ID).Return(nil)

	result, err := service.Checkout(ctx, buyer.ID, CheckoutRequest{
		Address:       "12 Main Street",
		PaymentOption: "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Lines)
	assert.True(t, decimal.NewFromInt(1040).Equal(result.Total))

	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].OrderID)
	assert.NotEmpty(t, saved[1].OrderID)
	assert.NotEqual(t, saved[0].OrderID, saved[1].OrderID, "each line gets its own order id")
	assert.Equal(t, []string{saved[0].OrderID, saved[1].OrderID}, result.OrderIDs)
	assert.Equal(t, shopping.PaymentCash, saved[0].PaymentOption)
	assert.Equal(t, shopping.OrderStatusInitiated, saved[0].Status)
	assert.Equal(t, "12 Main Street", saved[0].Address)

	assert.Equal(t, 4, laptop.Count, "stock is decreased per purchased unit")
	assert.Equal(t, 8, mouse.Count)
	mockCartRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	service, mockOrderRepo, mockUserRepo, mockCartRepo, _ := newOrderServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)

	mockUserRepo.On("FindByID", ctx, buyer.ID).Return(buyer, nil)
	mockCartRepo.On("FindByUser", ctx, buyer.ID).Return([]shopping.CartLine{}, nil)

	result, err := service.Checkout(ctx, buyer.ID, CheckoutRequest{
		Address:       "12 Main Street",
		PaymentOption: "cod",
	})

	require.NoError(t, err, "checking out an empty cart is a valid no-op")
	require.NotNil(t, result)
	assert.Empty(t, result.OrderIDs)
	assert.Zero(t, result.Lines)
	assert.True(t, result.Total.IsZero())
	mockOrderRepo.AssertNotCalled(t, "SaveAll")
	mockCartRepo.AssertNotCalled(t, "ClearUser")
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	service, mockOrderRepo, mockUserRepo, mockCartRepo, mockProductRepo := newOrderServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 1, 1000)

	line, err := shopping.NewCartLine(buyer.ID, laptop.ID, 3)
	require.NoError(t, err)

	mockUserRepo.On("FindByID", ctx, buyer.ID).Return(buyer, nil)
	mockCartRepo.On("FindByUser", ctx, buyer.ID).Return([]shopping.CartLine{*line}, nil)
	mockProductRepo.On("FindByID", ctx, laptop.ID).Return(laptop, nil)

	result, err := service.Checkout(ctx, buyer.ID, CheckoutRequest{
		Address:       "12 Main Street",
		PaymentOption: "cod",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	mockOrderRepo.AssertNotCalled(t, "SaveAll")
	mockCartRepo.AssertNotCalled(t, "ClearUser")
}

func TestOrderService_Checkout_InvalidPayment(t *testing.T) {
	service, mockOrderRepo, mockUserRepo, mockCartRepo, mockProductRepo := newOrderServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 5, 1000)

	line, err := shopping.NewCartLine(buyer.ID, laptop.ID, 1)
	require.NoError(t, err)

	mockUserRepo.On("FindByID", ctx, buyer.ID).Return(buyer, nil)
	mockCartRepo.On("FindByUser", ctx, buyer.ID).Return([]shopping.CartLine{*line}, nil)
	mockProductRepo.On("FindByID", ctx, laptop.ID).Return(laptop, nil)
	mockProductRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

	result, err := service.Checkout(ctx, buyer.ID, CheckoutRequest{
		Address:       "12 Main Street",
		PaymentOption: "",
	})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PAYMENT", domainErr.Code)
	mockOrderRepo.AssertNotCalled(t, "SaveAll")
}

func TestOrderService_GetByOrderID_Empty(t *testing.T) {
	service, mockOrderRepo, _, _, _ := newOrderServiceForTest()

	ctx := context.Background()

	mockOrderRepo.On("FindByOrderID", ctx, "unknown-order").Return([]shopping.OrderHistory{}, nil)

	result, err := service.GetByOrderID(ctx, "unknown-order")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestOrderService_SetDelivered_KeepsFirstDeliveryTime(t *testing.T) {
	service, mockOrderRepo, _, _, _ := newOrderServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 5, 1000)

	record, err := shopping.NewOrderHistory(shopping.NewOrderID(),
		shopping.ProductSnapshot{ID: laptop.ID, Name: laptop.Name, UnitPrice: laptop.BuyPrice},
		shopping.BuyerSnapshot{ID: buyer.ID, Name: buyer.FullName, MobileNo: buyer.MobileNo, Address: "12 Main Street"},
		1, shopping.PaymentCashOnDelivery)
	require.NoError(t, err)

	mockOrderRepo.On("FindByID", ctx, record.ID).Return(record, nil)
	mockOrderRepo.On("Save", ctx, record).Return(nil)

	first, err := service.SetDelivered(ctx, record.ID, true)
	require.NoError(t, err)
	require.NotNil(t, first.DeliverTime)
	firstTime := *first.DeliverTime

	second, err := service.SetDelivered(ctx, record.ID, true)
	require.NoError(t, err)
	assert.Equal(t, firstTime, *second.DeliverTime, "re-marking keeps the original delivery time")
	assert.Equal(t, string(shopping.OrderStatusDelivered), second.Status)

	reverted, err := service.SetDelivered(ctx, record.ID, false)
	require.NoError(t, err)
	assert.False(t, reverted.Delivered)
	assert.Nil(t, reverted.DeliverTime)
	assert.Equal(t, string(shopping.OrderStatusInitiated), reverted.Status)
}

func TestOrderService_Cancel_AfterDelivery(t *testing.T) {
	service, mockOrderRepo, _, _, _ := newOrderServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 5, 1000)

	record, err := shopping.NewOrderHistory(shopping.NewOrderID(),
		shopping.ProductSnapshot{ID: laptop.ID, Name: laptop.Name, UnitPrice: laptop.BuyPrice},
		shopping.BuyerSnapshot{ID: buyer.ID, Name: buyer.FullName, MobileNo: buyer.MobileNo, Address: "12 Main Street"},
		1, shopping.PaymentCashOnDelivery)
	require.NoError(t, err)
	record.MarkDelivered()

	mockOrderRepo.On("FindByID", ctx, record.ID).Return(record, nil)
	mockOrderRepo.On("Save", ctx, record).Return(nil)

	result, err := service.Cancel(ctx, record.ID)

	require.NoError(t, err)
	assert.Equal(t, string(shopping.OrderStatusCanceled), result.Status)
	assert.False(t, result.Delivered, "cancellation clears the delivered flag")
	assert.Nil(t, result.DeliverTime)
}

func TestOrderService_ListForBuyer(t *testing.T) {
	service, mockOrderRepo, _, _, _ := newOrderServiceForTest()

	ctx := context.Background()
	buyer := createTestBuyer(t)
	laptop := createStockedProduct(t, "Laptop", 5, 1000)

	record, err := shopping.NewOrderHistory(shopping.NewOrderID(),
		shopping.ProductSnapshot{ID: laptop.ID, Name: laptop.Name, UnitPrice: laptop.BuyPrice},
		shopping.BuyerSnapshot{ID: buyer.ID, Name: buyer.FullName, MobileNo: buyer.MobileNo, Address: "12 Main Street"},
		2, shopping.PaymentCard)
	require.NoError(t, err)

	mockOrderRepo.On("FindByBuyer", ctx, buyer.ID, mock.AnythingOfType("shared.Filter")).
		Return([]shopping.OrderHistory{*record}, nil)

	result, err := service.ListForBuyer(ctx, buyer.ID)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, record.OrderID, result[0].OrderID)
	assert.True(t, decimal.NewFromInt(2000).Equal(result[0].Total))
}
