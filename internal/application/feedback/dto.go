package feedback

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/feedback"
)

// AddCommentRequest attaches a rated comment to a product
type AddCommentRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
}

// AddReviewRequest attaches a review to a completed order
type AddReviewRequest struct {
	OrderID string `json:"order_id"`
	Text    string `json:"text"`
}

// CommentResponse is the API representation of a product comment
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductCommentsResponse bundles a product's comments with its average rating
type ProductCommentsResponse struct {
	Comments      []CommentResponse `json:"comments"`
	AverageRating float64           `json:"average_rating"`
}

// ReviewResponse is the API representation of an order review
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserEmail string    `json:"user_email"`
	OrderID   string    `json:"order_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCommentResponse maps a comment to its API representation
func ToCommentResponse(comment *feedback.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		UserID:    comment.UserID,
		ProductID: comment.ProductID,
		Text:      comment.Text,
		Rating:    comment.Rating,
		CreatedAt: comment.CreatedAt,
	}
}

// ToReviewResponse maps a review to its API representation
func ToReviewResponse(review *feedback.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		UserEmail: review.UserEmail,
		OrderID:   review.OrderID,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}
