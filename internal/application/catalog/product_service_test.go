package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProductRepository is a mock implementation of ProductRepository
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

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindRoots(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindDefault(ctx context.Context) (*catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) PromoteChildren(ctx context.Context, parentID uuid.UUID) error {
	args := m.Called(ctx, parentID)
	return args.Error(0)
}

// stubRowTranslator prefixes every segment with the language tag,
// or fails as a whole when err is set.
type stubRowTranslator struct {
	err   error
	calls int
}

func (s *stubRowTranslator) TranslateRows(_ context.Context, rows [][]string, language string) ([][]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	translated := make([][]string, len(rows))
	for i, row := range rows {
		translated[i] = make([]string, len(row))
		for j, text := range row {
			translated[i][j] = "[" + language + "] " + text
		}
	}
	return translated, nil
}

// Test helpers
func createTestCategory(t *testing.T, name string) *catalog.Category {
	t.Helper()

	category, err := catalog.NewCategory(name)
	require.NoError(t, err)
	return category
}

func createTestProduct(t *testing.T, name string, categoryID uuid.UUID) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(name, 10,
		decimal.NewFromInt(100), 20, decimal.NewFromInt(80), categoryID)
	require.NoError(t, err)
	return product
}

func TestProductService_Create_Success(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := NewProductService(mockProductRepo, mockCategoryRepo, nil, zap.NewNop())

	ctx := context.Background()
	category := createTestCategory(t, "Electronics")

	req := CreateProductRequest{
		Name:        "  Gaming Laptop  ",
		Image1:      "laptop.png",
		Count:       5,
		ActualPrice: decimal.NewFromInt(1200),
		OffPercent:  10,
		BuyPrice:    decimal.NewFromInt(1080),
		CategoryID:  category.ID,
	}

	mockCategoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	mockProductRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "Gaming Laptop", result.Name)
	assert.Equal(t, "gaming_laptop", result.Title, "title is derived from the name")
	assert.Equal(t, "laptop.png", result.Image1)
	assert.True(t, result.InStock)
	mockProductRepo.AssertExpectations(t)
	mockCategoryRepo.AssertExpectations(t)
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := NewProductService(mockProductRepo, mockCategoryRepo, nil, zap.NewNop())

	ctx := context.Background()
	categoryID := uuid.New()

	mockCategoryRepo.On("FindByID", ctx, categoryID).Return(nil, shared.ErrNotFound)

	result, err := service.Create(ctx, CreateProductRequest{
		Name:        "Gaming Laptop",
		Count:       5,
		ActualPrice: decimal.NewFromInt(1200),
		BuyPrice:    decimal.NewFromInt(1080),
		CategoryID:  categoryID,
	})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
	mockProductRepo.AssertNotCalled(t, "Save")
}

func TestProductService_GetByTitle(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := NewProductService(mockProductRepo, mockCategoryRepo, nil, zap.NewNop())

	ctx := context.Background()
	product := createTestProduct(t, "Gaming Laptop", uuid.New())

	mockProductRepo.On("FindByTitle", ctx, "gaming_laptop").Return(product, nil)

	result, err := service.GetByTitle(ctx, "Gaming Laptop", "en")

	assert.NoError(t, err)
	assert.Equal(t, product.ID, result.ID)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_GetByID_OverviewLanguage(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := NewProductService(mockProductRepo, mockCategoryRepo, nil, zap.NewNop())

	ctx := context.Background()
	product := createTestProduct(t, "Gaming Laptop", uuid.New())
	product.SetDescription("", "", "An English overview", "Ein deutscher Text")

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	english, err := service.GetByID(ctx, product.ID, "en")
	require.NoError(t, err)
	assert.Equal(t, "An English overview", english.Overview)

	german, err := service.GetByID(ctx, product.ID, "de")
	require.NoError(t, err)
	assert.Equal(t, "Ein deutscher Text", german.Overview)
}

func TestProductService_List_ByCategory(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := NewProductService(mockProductRepo, mockCategoryRepo, nil, zap.NewNop())

	ctx := context.Background()
	categoryID := uuid.New()
	products := []catalog.Product{*createTestProduct(t, "Laptop", categoryID)}

	mockProductRepo.On("FindByCategory", ctx, categoryID, mock.AnythingOfType("shared.Filter")).Return(products, nil)
	mockProductRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	result, total, err := service.List(ctx, ProductListFilter{CategoryID: &categoryID}, "en")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int64(1), total)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_List_TranslatesTexts(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	translator := &stubRowTranslator{}
	service := NewProductService(mockProductRepo, mockCategoryRepo, translator, zap.NewNop())

	ctx := context.Background()
	product := createTestProduct(t, "Laptop", uuid.New())
	product.SetDescription("Fast CPU", "Aluminium body", "An overview", "")

	mockProductRepo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return([]catalog.Product{*product}, nil)
	mockProductRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	result, _, err := service.List(ctx, ProductListFilter{}, "de")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "[de] Laptop", result[0].Name)
	assert.Equal(t, "[de] Fast CPU", result[0].Features)
	assert.Equal(t, "[de] Aluminium body", result[0].OtherDetails)
	assert.Equal(t, "[de] An overview", result[0].Overview)
	assert.Equal(t, 1, translator.calls, "the whole page goes out as one batch")
}

func TestProductService_List_TranslationFailureServesSource(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	translator := &stubRowTranslator{err: errors.New("provider unreachable")}
	service := NewProductService(mockProductRepo, mockCategoryRepo, translator, zap.NewNop())

	ctx := context.Background()
	product := createTestProduct(t, "Laptop", uuid.New())

	mockProductRepo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return([]catalog.Product{*product}, nil)
	mockProductRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	result, _, err := service.List(ctx, ProductListFilter{}, "de")

	require.NoError(t, err, "a broken provider must not take the listing down")
	require.Len(t, result, 1)
	assert.Equal(t, "Laptop", result[0].Name)
}

func TestProductService_GetByID_Translated(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := NewProductService(mockProductRepo, mockCategoryRepo, &stubRowTranslator{}, zap.NewNop())

	ctx := context.Background()
	product := createTestProduct(t, "Laptop", uuid.New())

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	result, err := service.GetByID(ctx, product.ID, "de")

	require.NoError(t, err)
	assert.Equal(t, "[de] Laptop", result.Name)
}

func TestProductService_Update_RenameRederivesTitle(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := NewProductService(mockProductRepo, mockCategoryRepo, nil, zap.NewNop())

	ctx := context.Background()
	product := createTestProduct(t, "Gaming Laptop", uuid.New())
	newName := "Office Laptop"

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockProductRepo.On("Save", ctx, product).Return(nil)

	result, err := service.Update(ctx, product.ID, UpdateProductRequest{Name: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "Office Laptop", result.Name)
	assert.Equal(t, "office_laptop", result.Title)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Update_InvalidPricing(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := NewProductService(mockProductRepo, mockCategoryRepo, nil, zap.NewNop())

	ctx := context.Background()
	product := createTestProduct(t, "Gaming Laptop", uuid.New())
	badDiscount := 150

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	result, err := service.Update(ctx, product.ID, UpdateProductRequest{OffPercent: &badDiscount})

	assert.Nil(t, result)
	assert.Error(t, err)
	mockProductRepo.AssertNotCalled(t, "Save")
}

func TestProductService_Delete(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := NewProductService(mockProductRepo, mockCategoryRepo, nil, zap.NewNop())

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.On("Delete", ctx, productID).Return(nil)

	err := service.Delete(ctx, productID)

	assert.NoError(t, err)
	mockProductRepo.AssertExpectations(t)
}
