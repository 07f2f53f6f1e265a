package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/application/feedback"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// FeedbackHandler handles product comments and order reviews
type FeedbackHandler struct {
	BaseHandler
	feedbackService *feedback.FeedbackService
	authMW          gin.HandlerFunc
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService *feedback.FeedbackService, authMW gin.HandlerFunc) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		authMW:          authMW,
	}
}

// RegisterRoutes registers all feedback routes
func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/:id/comments", h.ProductComments)
	rg.GET("/orders/:order_id/reviews", h.OrderReviews)

	authed := rg.Group("", h.authMW)
	{
		authed.POST("/comments", h.AddComment)
		authed.POST("/reviews", h.AddReview)
		authed.PUT("/reviews/:id", h.UpdateReview)
		authed.DELETE("/reviews/:id", h.DeleteReview)
	}
}

// CommentRequest is the payload for commenting on a product
type CommentRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Text      string    `json:"text" binding:"required"`
	Rating    int       `json:"rating" binding:"required,gte=1,lte=5"`
}

// AddComment attaches a rated comment to a product
func (h *FeedbackHandler) AddComment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	comment, err := h.feedbackService.AddComment(c.Request.Context(), userID, feedback.AddCommentRequest{
		ProductID: req.ProductID,
		Text:      req.Text,
		Rating:    req.Rating,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, comment)
}

// ProductComments returns a product's comments with the average rating
func (h *FeedbackHandler) ProductComments(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	comments, err := h.feedbackService.GetProductComments(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, comments)
}

// ReviewRequest is the payload for reviewing an order
type ReviewRequest struct {
	OrderID string `json:"order_id" binding:"required,uuid"`
	Text    string `json:"text" binding:"required"`
}

// AddReview attaches a review to one of the caller's orders
func (h *FeedbackHandler) AddReview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	review, err := h.feedbackService.AddReview(c.Request.Context(), userID, middleware.GetJWTEmail(c), feedback.AddReviewRequest{
		OrderID: req.OrderID,
		Text:    req.Text,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, review)
}

// UpdateReviewRequest is the payload for editing a review
type UpdateReviewRequest struct {
	Text string `json:"text" binding:"required"`
}

// UpdateReview replaces the text of the caller's own review
func (h *FeedbackHandler) UpdateReview(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	review, err := h.feedbackService.UpdateReview(c.Request.Context(), middleware.GetJWTEmail(c), id, req.Text)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, review)
}

// DeleteReview removes a review. Admins can remove any review, other
// callers only their own.
func (h *FeedbackHandler) DeleteReview(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	err := h.feedbackService.DeleteReview(c.Request.Context(), middleware.GetJWTEmail(c), c.GetBool(middleware.JWTIsAdminKey), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// OrderReviews returns the reviews left on one order
func (h *FeedbackHandler) OrderReviews(c *gin.Context) {
	reviews, err := h.feedbackService.GetOrderReviews(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reviews)
}
