package feedback

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/feedback"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"go.uber.org/zap"
)

// FeedbackService handles product comments and order reviews
type FeedbackService struct {
	commentRepo feedback.CommentRepository
	reviewRepo  feedback.ReviewRepository
	productRepo catalog.ProductRepository
	orderRepo   shopping.OrderHistoryRepository
	logger      *zap.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(
	commentRepo feedback.CommentRepository,
	reviewRepo feedback.ReviewRepository,
	productRepo catalog.ProductRepository,
	orderRepo shopping.OrderHistoryRepository,
	logger *zap.Logger,
) *FeedbackService {
	return &FeedbackService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// AddComment attaches a rated comment to a product
func (s *FeedbackService) AddComment(ctx context.Context, userID uuid.UUID, req AddCommentRequest) (*CommentResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	comment, err := feedback.NewComment(userID, req.ProductID, req.Text, req.Rating)
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Save(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Debug("Comment added",
		zap.String("product_id", req.ProductID.String()),
		zap.Int("rating", req.Rating))

	response := ToCommentResponse(comment)
	return &response, nil
}

// GetProductComments returns a product's comments with its average rating
func (s *FeedbackService) GetProductComments(ctx context.Context, productID uuid.UUID) (*ProductCommentsResponse, error) {
	comments, err := s.commentRepo.FindByProduct(ctx, productID, shared.Filter{OrderBy: "created_at", OrderDir: "desc"})
	if err != nil {
		return nil, err
	}

	average, err := s.commentRepo.AverageRating(ctx, productID)
	if err != nil {
		return nil, err
	}

	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = ToCommentResponse(&comments[i])
	}

	return &ProductCommentsResponse{
		Comments:      responses,
		AverageRating: average,
	}, nil
}

// AddReview attaches a review to one of the caller's orders
func (s *FeedbackService) AddReview(ctx context.Context, userID uuid.UUID, userEmail string, req AddReviewRequest) (*ReviewResponse, error) {
	records, err := s.orderRepo.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, shared.ErrNotFound
	}
	if records[0].BuyerID != userID {
		return nil, shared.ErrForbidden
	}

	review, err := feedback.NewReview(userEmail, req.OrderID, req.Text)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	response := ToReviewResponse(review)
	return &response, nil
}

// UpdateReview replaces the text of the caller's own review
func (s *FeedbackService) UpdateReview(ctx context.Context, userEmail string, reviewID uuid.UUID, text string) (*ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !review.IsOwnedBy(userEmail) {
		return nil, shared.ErrForbidden
	}

	if err := review.UpdateText(text); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	response := ToReviewResponse(review)
	return &response, nil
}

// DeleteReview removes a review. Admins can remove any review, other
// callers only their own.
func (s *FeedbackService) DeleteReview(ctx context.Context, userEmail string, isAdmin bool, reviewID uuid.UUID) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if !isAdmin && !review.IsOwnedBy(userEmail) {
		return shared.ErrForbidden
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.logger.Info("Review deleted",
		zap.String("review_id", reviewID.String()),
		zap.Bool("by_admin", isAdmin))
	return nil
}

// GetOrderReviews returns the reviews left on one order
func (s *FeedbackService) GetOrderReviews(ctx context.Context, orderID string) ([]ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ToReviewResponse(&reviews[i])
	}

	return responses, nil
}
