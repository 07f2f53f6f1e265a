package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// CategoryHandler handles category requests. Reads are public, writes
// require an admin token.
type CategoryHandler struct {
	BaseHandler
	categoryService *catalog.CategoryService
	authMW          gin.HandlerFunc
	adminMW         gin.HandlerFunc
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *catalog.CategoryService, authMW, adminMW gin.HandlerFunc) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		authMW:          authMW,
		adminMW:         adminMW,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/tree", h.Tree)
		categories.GET("/:id", h.Get)
	}

	admin := rg.Group("/categories", h.authMW, h.adminMW)
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Rename)
		admin.DELETE("/:id", h.Delete)
	}
}

// CategoryRequest is the payload for creating a category
type CategoryRequest struct {
	Name     string     `json:"name" binding:"required,min=2,max=100"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// Create adds a category or subcategory
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), catalog.CreateCategoryRequest{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}

// Get returns one category
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// List returns all categories flat
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), c.Query("lang"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// Tree returns root categories with their direct children
func (h *CategoryHandler) Tree(c *gin.Context) {
	tree, err := h.categoryService.GetTree(c.Request.Context(), c.Query("lang"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tree)
}

// RenameCategoryRequest is the payload for renaming a category
type RenameCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// Rename changes a category's name
func (h *CategoryHandler) Rename(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	category, err := h.categoryService.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// Delete removes a category. Its subcategories become roots and its
// products move to the default category.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
