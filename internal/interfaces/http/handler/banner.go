package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// BannerHandler handles storefront banner requests
type BannerHandler struct {
	BaseHandler
	bannerService *catalog.BannerService
	authMW        gin.HandlerFunc
	adminMW       gin.HandlerFunc
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(bannerService *catalog.BannerService, authMW, adminMW gin.HandlerFunc) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
		authMW:        authMW,
		adminMW:       adminMW,
	}
}

// RegisterRoutes registers all banner routes
func (h *BannerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/banners", h.List)

	admin := rg.Group("/banners", h.authMW, h.adminMW)
	{
		admin.POST("", h.Create)
		admin.DELETE("/:id", h.Delete)
	}
}

// BannerRequest is the payload for creating a banner
type BannerRequest struct {
	Link string `json:"link" binding:"required,max=500"`
}

// Create adds a banner to the storefront
func (h *BannerHandler) Create(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	banner, err := h.bannerService.Create(c.Request.Context(), req.Link)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, banner)
}

// List returns all banners
func (h *BannerHandler) List(c *gin.Context) {
	banners, err := h.bannerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, banners)
}

// Delete removes a banner
func (h *BannerHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.bannerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
