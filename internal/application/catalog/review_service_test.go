package catalog

import (
	"context"
	"testing"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockReviewRepository is a mock implementation of catalog.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]catalog.Review, error) {
	args := m.Called(ctx, productID, filter)
	return args.Get(0).([]catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, productID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) AverageRating(ctx context.Context, productID uuid.UUID) (float64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepository) Save(ctx context.Context, review *catalog.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newReviewService() (*ReviewService, *MockReviewRepository, *MockProductRepository) {
	reviewRepo := new(MockReviewRepository)
	productRepo := new(MockProductRepository)
	svc := NewReviewService(reviewRepo, productRepo, zap.NewNop())
	return svc, reviewRepo, productRepo
}

func TestReviewService_CreateReview(t *testing.T) {
	svc, reviewRepo, productRepo := newReviewService()
	product := newTestProduct(t, uuid.New())
	userID := uuid.New()

	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	reviewRepo.On("ExistsByProductAndUser", mock.Anything, product.ID, userID).Return(false, nil)
	reviewRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Review")).Return(nil)

	result, err := svc.CreateReview(context.Background(), CreateReviewInput{
		UserID:    userID,
		ProductID: product.ID,
		Rating:    4,
		Comment:   "Smells great",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Rating)
	reviewRepo.AssertExpectations(t)
}

func TestReviewService_CreateReview_AlreadyReviewed(t *testing.T) {
	svc, reviewRepo, productRepo := newReviewService()
	product := newTestProduct(t, uuid.New())
	userID := uuid.New()

	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	reviewRepo.On("ExistsByProductAndUser", mock.Anything, product.ID, userID).Return(true, nil)

	_, err := svc.CreateReview(context.Background(), CreateReviewInput{
		UserID:    userID,
		ProductID: product.ID,
		Rating:    5,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_REVIEWED", domainErr.Code)
	reviewRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReviewService_UpdateReview_OwnershipCheck(t *testing.T) {
	svc, reviewRepo, _ := newReviewService()

	review, err := catalog.NewReview(uuid.New(), uuid.New(), 3, "okay")
	require.NoError(t, err)

	reviewRepo.On("FindByID", mock.Anything, review.ID).Return(review, nil)

	_, err = svc.UpdateReview(context.Background(), UpdateReviewInput{
		UserID:   uuid.New(),
		ReviewID: review.ID,
		Rating:   1,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "REVIEW_NOT_FOUND", domainErr.Code)
	reviewRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReviewService_ListProductReviews(t *testing.T) {
	svc, reviewRepo, _ := newReviewService()
	productID := uuid.New()

	review, err := catalog.NewReview(productID, uuid.New(), 5, "love it")
	require.NoError(t, err)

	reviewRepo.On("FindByProduct", mock.Anything, productID, mock.Anything).Return([]catalog.Review{*review}, nil)
	reviewRepo.On("AverageRating", mock.Anything, productID).Return(4.5, nil)

	result, err := svc.ListProductReviews(context.Background(), productID, 1, 20)
	require.NoError(t, err)
	require.Len(t, result.Reviews, 1)
	assert.Equal(t, 4.5, result.AverageRating)
}
