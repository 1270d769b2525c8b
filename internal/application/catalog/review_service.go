package catalog

import (
	"context"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService manages product reviews, enforcing one review per
// user per product.
type ReviewService struct {
	reviewRepo  catalog.ReviewRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	reviewRepo catalog.ReviewRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateReview submits a review for a product
func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (*ReviewResult, error) {
	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}

	exists, err := s.reviewRepo.ExistsByProductAndUser(ctx, input.ProductID, input.UserID)
	if err != nil {
		s.logger.Error("Failed to check existing review", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit review")
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_REVIEWED", "You have already reviewed this product")
	}

	review, err := catalog.NewReview(input.ProductID, input.UserID, input.Rating, input.Comment)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		s.logger.Error("Failed to save review", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit review")
	}

	s.logger.Info("Review submitted",
		zap.String("product_id", input.ProductID.String()),
		zap.Int("rating", input.Rating))

	result := toReviewResult(review)
	return &result, nil
}

// UpdateReview edits the caller's own review
func (s *ReviewService) UpdateReview(ctx context.Context, input UpdateReviewInput) (*ReviewResult, error) {
	review, err := s.findOwnedReview(ctx, input.UserID, input.ReviewID)
	if err != nil {
		return nil, err
	}

	if err := review.UpdateContent(input.Rating, input.Comment); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		s.logger.Error("Failed to save review", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update review")
	}

	result := toReviewResult(review)
	return &result, nil
}

// DeleteReview removes the caller's own review
func (s *ReviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	review, err := s.findOwnedReview(ctx, userID, reviewID)
	if err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
		s.logger.Error("Failed to delete review", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete review")
	}
	return nil
}

// ListProductReviews returns approved reviews for a product together
// with the average rating
func (s *ReviewService) ListProductReviews(ctx context.Context, productID uuid.UUID, page, pageSize int) (*ProductReviewsResult, error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	reviews, err := s.reviewRepo.FindByProduct(ctx, productID, filter)
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load reviews")
	}

	average, err := s.reviewRepo.AverageRating(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to compute average rating", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load reviews")
	}

	results := make([]ReviewResult, 0, len(reviews))
	for i := range reviews {
		results = append(results, toReviewResult(&reviews[i]))
	}
	return &ProductReviewsResult{Reviews: results, AverageRating: average}, nil
}

// HideReview hides a review from public listings, staff only
func (s *ReviewService) HideReview(ctx context.Context, reviewID uuid.UUID) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return shared.NewDomainError("REVIEW_NOT_FOUND", "Review not found")
	}
	review.Hide()
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		s.logger.Error("Failed to hide review", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to hide review")
	}
	return nil
}

func (s *ReviewService) findOwnedReview(ctx context.Context, userID, reviewID uuid.UUID) (*catalog.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, shared.NewDomainError("REVIEW_NOT_FOUND", "Review not found")
	}
	if review.UserID != userID {
		return nil, shared.NewDomainError("REVIEW_NOT_FOUND", "Review not found")
	}
	return review, nil
}
