package catalog

import (
	"context"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryService manages the category tree. Mutations are staff-only;
// the HTTP layer enforces that.
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// CreateCategory creates a new category under an optional parent
func (s *CategoryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryResult, error) {
	if input.ParentID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *input.ParentID); err != nil {
			return nil, shared.NewDomainError("PARENT_NOT_FOUND", "Parent category not found")
		}
	}

	category, err := catalog.NewCategory(input.Name, input.ParentID)
	if err != nil {
		return nil, err
	}

	taken, err := s.categoryRepo.ExistsBySlug(ctx, category.Slug)
	if err != nil {
		s.logger.Error("Failed to check category slug", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create category")
	}
	if taken {
		return nil, shared.NewDomainError("CATEGORY_EXISTS", "A category with this name already exists")
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		s.logger.Error("Failed to save category", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create category")
	}

	s.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("slug", category.Slug))

	result := toCategoryResult(category)
	return &result, nil
}

// UpdateCategory renames or moves a category
func (s *CategoryService) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*CategoryResult, error) {
	category, err := s.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
	}

	if input.Name != category.Name {
		if err := category.Rename(input.Name); err != nil {
			return nil, err
		}
		taken, err := s.categoryRepo.ExistsBySlug(ctx, category.Slug)
		if err != nil {
			s.logger.Error("Failed to check category slug", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update category")
		}
		if taken {
			return nil, shared.NewDomainError("CATEGORY_EXISTS", "A category with this name already exists")
		}
	}

	if err := category.SetParent(input.ParentID); err != nil {
		return nil, err
	}

	if input.IsActive != nil {
		if *input.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		s.logger.Error("Failed to save category", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update category")
	}

	result := toCategoryResult(category)
	return &result, nil
}

// GetCategoryBySlug returns a category by its slug
func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*CategoryResult, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
	}
	result := toCategoryResult(category)
	return &result, nil
}

// ListCategories returns all categories
func (s *CategoryService) ListCategories(ctx context.Context) ([]CategoryResult, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 500
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load categories")
	}

	results := make([]CategoryResult, 0, len(categories))
	for i := range categories {
		results = append(results, toCategoryResult(&categories[i]))
	}
	return results, nil
}

// DeleteCategory removes a category. Categories with children or
// products are deactivated instead of deleted.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
	}

	children, err := s.categoryRepo.FindChildren(ctx, categoryID)
	if err != nil {
		s.logger.Error("Failed to load child categories", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete category")
	}

	filter := shared.DefaultFilter()
	filter.Filters["category_id"] = categoryID
	productCount, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count category products", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete category")
	}

	if len(children) > 0 || productCount > 0 {
		category.Deactivate()
		if err := s.categoryRepo.Save(ctx, category); err != nil {
			s.logger.Error("Failed to deactivate category", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete category")
		}
		return nil
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		s.logger.Error("Failed to delete category", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete category")
	}
	return nil
}
