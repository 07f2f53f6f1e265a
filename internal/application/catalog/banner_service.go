package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BannerService handles home page banner operations
type BannerService struct {
	bannerRepo catalog.BannerRepository
	logger     *zap.Logger
}

// NewBannerService creates a new BannerService
func NewBannerService(bannerRepo catalog.BannerRepository, logger *zap.Logger) *BannerService {
	return &BannerService{
		bannerRepo: bannerRepo,
		logger:     logger,
	}
}

// Create adds a new banner
func (s *BannerService) Create(ctx context.Context, link string) (*BannerResponse, error) {
	banner, err := catalog.NewBanner(link)
	if err != nil {
		return nil, err
	}

	if err := s.bannerRepo.Save(ctx, banner); err != nil {
		return nil, err
	}

	s.logger.Info("Banner created", zap.String("banner_id", banner.ID.String()))

	response := ToBannerResponse(banner)
	return &response, nil
}

// List retrieves all banners, newest first
func (s *BannerService) List(ctx context.Context) ([]BannerResponse, error) {
	banners, err := s.bannerRepo.FindAll(ctx, shared.Filter{OrderBy: "created_at", OrderDir: "desc"})
	if err != nil {
		return nil, err
	}

	responses := make([]BannerResponse, len(banners))
	for i := range banners {
		responses[i] = ToBannerResponse(&banners[i])
	}

	return responses, nil
}

// Delete removes a banner
func (s *BannerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.bannerRepo.Delete(ctx, id)
}
