package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/application/shopping"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// CartHandler handles the authenticated shopper's cart
type CartHandler struct {
	BaseHandler
	cartService *shopping.CartService
	authMW      gin.HandlerFunc
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *shopping.CartService, authMW gin.HandlerFunc) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		authMW:      authMW,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart", h.authMW)
	{
		cart.GET("", h.Get)
		cart.GET("/count", h.Count)
		cart.POST("/items", h.Add)
		cart.DELETE("/items/:id", h.Remove)
	}
}

// AddToCartRequest is the payload for adding a product to the cart
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Count     int       `json:"count" binding:"required,gt=0"`
}

// Add puts units of a product into the cart. Adding a product already
// in the cart increases its count.
func (h *CartHandler) Add(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	err = h.cartService.Add(c.Request.Context(), userID, shopping.AddToCartRequest{
		ProductID: req.ProductID,
		Count:     req.Count,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Get returns the cart joined with product details and its total
func (h *CartHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.cartService.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// Count returns the number of cart lines
func (h *CartHandler) Count(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	count, err := h.cartService.Count(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"count": count})
}

// Remove deletes one product's line from the cart
func (h *CartHandler) Remove(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.cartService.Remove(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
