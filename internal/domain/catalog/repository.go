package catalog

import (
	"context"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	// FindByID finds a category by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// FindBySlug finds a category by slug
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	// FindAll returns categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	// FindChildren returns the direct children of a category
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]Category, error)
	// ExistsBySlug checks slug uniqueness
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error
	// Delete removes a category
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines persistence operations for the Product
// aggregate, including its variants and images.
type ProductRepository interface {
	// FindByID finds a product (with variants and images) by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindBySlug finds a product by slug
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	// FindAll returns products matching the filter. Supported filter
	// keys: category_id, vendor_id, is_active, is_featured.
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	// FindByVendor returns products owned by a vendor
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Product, error)
	// FindLowStock returns active vendor products with stock below the threshold
	FindLowStock(ctx context.Context, vendorID uuid.UUID, threshold int) ([]Product, error)
	// ExistsBySlug checks slug uniqueness
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// Save creates or updates a product with its variants and images
	Save(ctx context.Context, product *Product) error
	// Delete removes a product
	Delete(ctx context.Context, id uuid.UUID) error
	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// CountByVendor counts a vendor's products, optionally active only
	CountByVendor(ctx context.Context, vendorID uuid.UUID, activeOnly bool) (int64, error)
}

// ReviewRepository defines persistence operations for reviews
type ReviewRepository interface {
	// FindByID finds a review by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	// FindByProduct returns approved reviews for a product
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]Review, error)
	// ExistsByProductAndUser checks the one-review-per-user rule
	ExistsByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (bool, error)
	// AverageRating returns the average approved rating for a product
	AverageRating(ctx context.Context, productID uuid.UUID) (float64, error)
	// Save creates or updates a review
	Save(ctx context.Context, review *Review) error
	// Delete removes a review
	Delete(ctx context.Context, id uuid.UUID) error
}
