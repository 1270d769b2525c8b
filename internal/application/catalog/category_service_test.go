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

func newCategoryService() (*CategoryService, *MockCategoryRepository, *MockProductRepository) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	svc := NewCategoryService(categoryRepo, productRepo, zap.NewNop())
	return svc, categoryRepo, productRepo
}

func TestCategoryService_CreateCategory(t *testing.T) {
	svc, categoryRepo, _ := newCategoryService()

	categoryRepo.On("ExistsBySlug", mock.Anything, "home-garden").Return(false, nil)
	categoryRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Category")).Return(nil)

	result, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "Home & Garden"})
	require.NoError(t, err)
	assert.Equal(t, "home-garden", result.Slug)
	assert.True(t, result.IsActive)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_SlugTaken(t *testing.T) {
	svc, categoryRepo, _ := newCategoryService()

	categoryRepo.On("ExistsBySlug", mock.Anything, "home").Return(true, nil)

	_, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "Home"})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CATEGORY_EXISTS", domainErr.Code)
	categoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCategoryService_CreateCategory_MissingParent(t *testing.T) {
	svc, categoryRepo, _ := newCategoryService()
	parentID := uuid.New()

	categoryRepo.On("FindByID", mock.Anything, parentID).Return(nil, shared.ErrNotFound)

	_, err := svc.CreateCategory(context.Background(), CreateCategoryInput{
		Name:     "Chairs",
		ParentID: &parentID,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PARENT_NOT_FOUND", domainErr.Code)
}

func TestCategoryService_DeleteCategory_WithProductsDeactivates(t *testing.T) {
	svc, categoryRepo, productRepo := newCategoryService()

	category, err := catalog.NewCategory("Home", nil)
	require.NoError(t, err)

	categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	categoryRepo.On("FindChildren", mock.Anything, category.ID).Return([]catalog.Category{}, nil)
	productRepo.On("Count", mock.Anything, mock.Anything).Return(int64(3), nil)
	categoryRepo.On("Save", mock.Anything, category).Return(nil)

	require.NoError(t, svc.DeleteCategory(context.Background(), category.ID))
	assert.False(t, category.IsActive)
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_DeleteCategory_Empty(t *testing.T) {
	svc, categoryRepo, productRepo := newCategoryService()

	category, err := catalog.NewCategory("Home", nil)
	require.NoError(t, err)

	categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	categoryRepo.On("FindChildren", mock.Anything, category.ID).Return([]catalog.Category{}, nil)
	productRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
	categoryRepo.On("Delete", mock.Anything, category.ID).Return(nil)

	require.NoError(t, svc.DeleteCategory(context.Background(), category.ID))
	categoryRepo.AssertExpectations(t)
}
