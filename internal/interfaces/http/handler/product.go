package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles catalog product requests. Reads are public,
// writes require an admin token.
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
	authMW         gin.HandlerFunc
	adminMW        gin.HandlerFunc
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalog.ProductService, authMW, adminMW gin.HandlerFunc) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		authMW:         authMW,
		adminMW:        adminMW,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.GET("/by-title/:title", h.GetByTitle)
	}

	admin := rg.Group("/products", h.authMW, h.adminMW)
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// ProductRequest is the payload for creating a product
type ProductRequest struct {
	Name         string          `json:"name" binding:"required,min=2,max=200"`
	Image1       string          `json:"image_1" binding:"omitempty,max=500"`
	Image2       string          `json:"image_2" binding:"omitempty,max=500"`
	Image3       string          `json:"image_3" binding:"omitempty,max=500"`
	Count        int             `json:"count" binding:"gte=0"`
	ActualPrice  decimal.Decimal `json:"actual_price" binding:"required"`
	OffPercent   int             `json:"off_percent" binding:"gte=0,lte=100"`
	BuyPrice     decimal.Decimal `json:"buy_price" binding:"required"`
	Features     string          `json:"features"`
	OtherDetails string          `json:"other_details"`
	OverviewEng  string          `json:"overview_eng"`
	OverviewDe   string          `json:"overview_de"`
	CategoryID   uuid.UUID       `json:"category_id" binding:"required"`
}

// Create adds a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), catalog.CreateProductRequest{
		Name:         req.Name,
		Image1:       req.Image1,
		Image2:       req.Image2,
		Image3:       req.Image3,
		Count:        req.Count,
		ActualPrice:  req.ActualPrice,
		OffPercent:   req.OffPercent,
		BuyPrice:     req.BuyPrice,
		Features:     req.Features,
		OtherDetails: req.OtherDetails,
		OverviewEng:  req.OverviewEng,
		OverviewDe:   req.OverviewDe,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// Get returns one product by its ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id, c.Query("lang"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// GetByTitle returns one product by its URL title
func (h *ProductHandler) GetByTitle(c *gin.Context) {
	product, err := h.productService.GetByTitle(c.Request.Context(), c.Param("title"), c.Query("lang"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// List returns products matching the query parameters
func (h *ProductHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	listReq.Normalize()

	filter := catalog.ProductListFilter{
		Search:   listReq.Search,
		InStock:  c.Query("in_stock") == "true",
		Page:     listReq.Page,
		PageSize: listReq.PageSize,
	}
	if categoryParam := c.Query("category_id"); categoryParam != "" {
		categoryID, err := uuid.Parse(categoryParam)
		if err != nil {
			h.BadRequest(c, "Invalid category ID")
			return
		}
		filter.CategoryID = &categoryID
	}

	products, total, err := h.productService.List(c.Request.Context(), filter, c.Query("lang"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, products, total, listReq.Page, listReq.PageSize)
}

// UpdateProductRequest is the payload for updating a product, all
// fields optional
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=2,max=200"`
	Image1       *string          `json:"image_1" binding:"omitempty,max=500"`
	Image2       *string          `json:"image_2" binding:"omitempty,max=500"`
	Image3       *string          `json:"image_3" binding:"omitempty,max=500"`
	Count        *int             `json:"count" binding:"omitempty,gte=0"`
	ActualPrice  *decimal.Decimal `json:"actual_price"`
	OffPercent   *int             `json:"off_percent" binding:"omitempty,gte=0,lte=100"`
	BuyPrice     *decimal.Decimal `json:"buy_price"`
	Features     *string          `json:"features"`
	OtherDetails *string          `json:"other_details"`
	OverviewEng  *string          `json:"overview_eng"`
	OverviewDe   *string          `json:"overview_de"`
	CategoryID   *uuid.UUID       `json:"category_id"`
}

// Update modifies a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, catalog.UpdateProductRequest{
		Name:         req.Name,
		Image1:       req.Image1,
		Image2:       req.Image2,
		Image3:       req.Image3,
		Count:        req.Count,
		ActualPrice:  req.ActualPrice,
		OffPercent:   req.OffPercent,
		BuyPrice:     req.BuyPrice,
		Features:     req.Features,
		OtherDetails: req.OtherDetails,
		OverviewEng:  req.OverviewEng,
		OverviewDe:   req.OverviewDe,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
