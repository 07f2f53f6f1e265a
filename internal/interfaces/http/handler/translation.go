package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/application/i18n"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// TranslationHandler serves localized UI copy bundles
type TranslationHandler struct {
	BaseHandler
	translationService *i18n.TranslationService
	authMW             gin.HandlerFunc
	adminMW            gin.HandlerFunc
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(translationService *i18n.TranslationService, authMW, adminMW gin.HandlerFunc) *TranslationHandler {
	return &TranslationHandler{
		translationService: translationService,
		authMW:             authMW,
		adminMW:            adminMW,
	}
}

// RegisterRoutes registers all translation routes
func (h *TranslationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	i18nGroup := rg.Group("/i18n")
	{
		i18nGroup.GET("/languages", h.Languages)
		i18nGroup.GET("/bundle/:lang", h.GetBundle)
	}

	admin := rg.Group("/i18n", h.authMW, h.adminMW)
	{
		admin.PUT("/bundle", h.UpdateBundle)
	}
}

// Languages returns the languages offered to storefront visitors
func (h *TranslationHandler) Languages(c *gin.Context) {
	h.Success(c, gin.H{"languages": h.translationService.Languages()})
}

// GetBundle returns the UI copy bundle translated into one language
func (h *TranslationHandler) GetBundle(c *gin.Context) {
	bundle, err := h.translationService.GetBundle(c.Request.Context(), c.Param("lang"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bundle)
}

// UpdateBundle edits fields of the source-language bundle
func (h *TranslationHandler) UpdateBundle(c *gin.Context) {
	var req i18n.UpdateBundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	bundle, err := h.translationService.UpdateBundle(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bundle)
}
