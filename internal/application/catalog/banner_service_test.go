package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockBannerRepository is a mock implementation of BannerRepository
type MockBannerRepository struct {
	mock.Mock
}

func (m *MockBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Banner), args.Error(1)
}

func (m *MockBannerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Banner, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Banner), args.Error(1)
}

func (m *MockBannerRepository) Save(ctx context.Context, banner *catalog.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *MockBannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestBannerService_Create_Success(t *testing.T) {
	mockRepo := new(MockBannerRepository)
	service := NewBannerService(mockRepo, zap.NewNop())

	ctx := context.Background()

	mockRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Banner")).Return(nil)

	result, err := service.Create(ctx, "promo/summer-sale.png")

	assert.NoError(t, err)
	assert.Equal(t, "promo/summer-sale.png", result.Link)
	mockRepo.AssertExpectations(t)
}

func TestBannerService_Create_EmptyLink(t *testing.T) {
	mockRepo := new(MockBannerRepository)
	service := NewBannerService(mockRepo, zap.NewNop())

	result, err := service.Create(context.Background(), "   ")

	assert.Nil(t, result)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestBannerService_List(t *testing.T) {
	mockRepo := new(MockBannerRepository)
	service := NewBannerService(mockRepo, zap.NewNop())

	ctx := context.Background()
	first, _ := catalog.NewBanner("promo/a.png")
	second, _ := catalog.NewBanner("promo/b.png")

	mockRepo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).
		Return([]catalog.Banner{*second, *first}, nil)

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	mockRepo.AssertExpectations(t)
}
