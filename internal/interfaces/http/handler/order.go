package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/application/shopping"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout and purchase history requests
type OrderHandler struct {
	BaseHandler
	orderService *shopping.OrderService
	authMW       gin.HandlerFunc
	adminMW      gin.HandlerFunc
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *shopping.OrderService, authMW, adminMW gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		authMW:       authMW,
		adminMW:      adminMW,
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders", h.authMW)
	{
		orders.POST("/checkout", h.Checkout)
		orders.GET("", h.ListMine)
		orders.GET("/:order_id", h.GetByOrderID)
	}

	admin := rg.Group("/admin/orders", h.authMW, h.adminMW)
	{
		admin.GET("", h.ListAll)
		admin.PUT("/:id/delivered", h.SetDelivered)
		admin.POST("/:id/cancel", h.Cancel)
	}
}

// CheckoutRequest is the payload for turning the cart into an order
type CheckoutRequest struct {
	Address       string `json:"address" binding:"required,max=500"`
	PaymentOption string `json:"payment_option" binding:"required"`
}

// Checkout converts the caller's cart into purchase records. Stock is
// decremented and the cart cleared in the same transaction.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.orderService.Checkout(c.Request.Context(), userID, shopping.CheckoutRequest{
		Address:       req.Address,
		PaymentOption: req.PaymentOption,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListMine returns the caller's purchase records
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	records, err := h.orderService.ListForBuyer(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// GetByOrderID returns the purchase records carrying the given order id
func (h *OrderHandler) GetByOrderID(c *gin.Context) {
	records, err := h.orderService.GetByOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// ListAll returns purchase records across all buyers. The delivered
// query parameter narrows to delivered or pending records.
func (h *OrderHandler) ListAll(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		records []shopping.OrderHistoryResponse
		err     error
	)
	switch c.Query("delivered") {
	case "true":
		records, err = h.orderService.ListByDelivered(ctx, true)
	case "false":
		records, err = h.orderService.ListByDelivered(ctx, false)
	default:
		records, err = h.orderService.ListAll(ctx)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// SetDeliveredRequest flips the delivered flag of a purchase record
type SetDeliveredRequest struct {
	Delivered *bool `json:"delivered" binding:"required"`
}

// SetDelivered marks one purchase record as delivered or reverts it
// to the initiated state
func (h *OrderHandler) SetDelivered(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req SetDeliveredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	record, err := h.orderService.SetDelivered(c.Request.Context(), id, *req.Delivered)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// Cancel cancels one purchase record
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	record, err := h.orderService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}
