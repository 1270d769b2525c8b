package catalog

import (
	"context"
	"fmt"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared/valueobject"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/vendor"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const maxSlugAttempts = 25

// ProductService manages the vendor-facing and public product catalog.
// Writes require an approved vendor profile and go through ownership
// checks; reads are cached when a cache is configured.
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	profileRepo  vendor.ProfileRepository
	cache        *cache.ProductCache
	logger       *zap.Logger
}

// NewProductService creates a new product service. Cache may be nil.
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	profileRepo vendor.ProfileRepository,
	productCache *cache.ProductCache,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		cache:        productCache,
		logger:       logger,
	}
}

// CreateProduct creates a product for the calling vendor
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductResult, error) {
	profile, err := s.requireApprovedVendor(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
	}

	price, err := valueobject.NewMoneyUSDFromString(input.BasePrice)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Base price is not a valid amount")
	}

	product, err := catalog.NewProduct(profile.ID, input.CategoryID, input.Name, input.Description, price, input.Stock)
	if err != nil {
		return nil, err
	}

	slug, err := s.ensureUniqueSlug(ctx, product.Slug)
	if err != nil {
		return nil, err
	}
	product.Slug = slug

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create product")
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("vendor_id", profile.ID.String()),
		zap.String("slug", product.Slug))

	result := toProductResult(product)
	return &result, nil
}

// UpdateProduct updates a product owned by the calling vendor
func (s *ProductService) UpdateProduct(ctx context.Context, input UpdateProductInput) (*ProductResult, error) {
	product, err := s.findOwnedProduct(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != product.CategoryID {
		if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
		}
	}

	price, err := valueobject.NewMoneyUSDFromString(input.BasePrice)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Base price is not a valid amount")
	}

	oldSlug := product.Slug
	if err := product.Update(input.CategoryID, input.Name, input.Description, price, input.Stock); err != nil {
		return nil, err
	}
	if product.Slug != oldSlug {
		slug, err := s.ensureUniqueSlug(ctx, product.Slug)
		if err != nil {
			return nil, err
		}
		product.Slug = slug
	} else {
		product.Slug = oldSlug
	}

	return s.saveAndInvalidate(ctx, product, "Failed to update product")
}

// GetProduct returns a product by ID, served from cache when possible
func (s *ProductService) GetProduct(ctx context.Context, productID uuid.UUID) (*ProductResult, error) {
	if s.cache != nil {
		var cached ProductResult
		hit, err := s.cache.Get(ctx, productID.String(), &cached)
		if err != nil {
			s.logger.Warn("Product cache read failed", zap.Error(err))
		}
		if hit {
			return &cached, nil
		}
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}

	result := toProductResult(product)
	if s.cache != nil {
		if err := s.cache.Set(ctx, productID.String(), result); err != nil {
			s.logger.Warn("Product cache write failed", zap.Error(err))
		}
	}
	return &result, nil
}

// GetProductBySlug returns a product by its slug
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*ProductResult, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}
	result := toProductResult(product)
	return &result, nil
}

// ListProducts returns the public catalog listing. Only active products
// are included.
func (s *ProductService) ListProducts(ctx context.Context, input ListProductsInput) ([]ProductResult, error) {
	filter := shared.DefaultFilter()
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 {
		filter.PageSize = input.PageSize
	}
	filter.Search = input.Search
	filter.Filters["is_active"] = true
	if input.CategoryID != nil {
		filter.Filters["category_id"] = *input.CategoryID
	}
	if input.VendorID != nil {
		filter.Filters["vendor_id"] = *input.VendorID
	}
	if input.Featured != nil {
		filter.Filters["is_featured"] = *input.Featured
	}

	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load products")
	}

	results := make([]ProductResult, 0, len(products))
	for i := range products {
		results = append(results, toProductResult(&products[i]))
	}
	return results, nil
}

// ListVendorProducts returns the calling vendor's own products,
// including inactive ones
func (s *ProductService) ListVendorProducts(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]ProductResult, error) {
	profile, err := s.requireApprovedVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	products, err := s.productRepo.FindByVendor(ctx, profile.ID, filter)
	if err != nil {
		s.logger.Error("Failed to list vendor products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load products")
	}

	results := make([]ProductResult, 0, len(products))
	for i := range products {
		results = append(results, toProductResult(&products[i]))
	}
	return results, nil
}

// SetProductActive toggles a product's catalog visibility
func (s *ProductService) SetProductActive(ctx context.Context, userID, productID uuid.UUID, active bool) (*ProductResult, error) {
	product, err := s.findOwnedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if active {
		product.Activate()
	} else {
		product.Deactivate()
	}
	return s.saveAndInvalidate(ctx, product, "Failed to update product")
}

// SetProductFeatured toggles the featured flag, staff only
func (s *ProductService) SetProductFeatured(ctx context.Context, productID uuid.UUID, featured bool) (*ProductResult, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}
	product.SetFeatured(featured)
	return s.saveAndInvalidate(ctx, product, "Failed to update product")
}

// DeleteProduct removes a product owned by the calling vendor
func (s *ProductService) DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error {
	product, err := s.findOwnedProduct(ctx, userID, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, product.ID); err != nil {
		s.logger.Error("Failed to delete product", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete product")
	}
	s.invalidate(ctx, product.ID)
	return nil
}

// AddVariant adds a SKU variant to an owned product
func (s *ProductService) AddVariant(ctx context.Context, input AddVariantInput) (*ProductResult, error) {
	product, err := s.findOwnedProduct(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}

	modifier, err := parseModifier(input.PriceModifier)
	if err != nil {
		return nil, err
	}

	if _, err := product.AddVariant(input.Name, input.SKU, modifier, input.Stock); err != nil {
		return nil, err
	}
	return s.saveAndInvalidate(ctx, product, "Failed to add variant")
}

// UpdateVariant updates a variant's price modifier and stock
func (s *ProductService) UpdateVariant(ctx context.Context, input UpdateVariantInput) (*ProductResult, error) {
	product, err := s.findOwnedProduct(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}

	modifier, err := parseModifier(input.PriceModifier)
	if err != nil {
		return nil, err
	}

	if err := product.UpdateVariant(input.VariantID, modifier, input.Stock); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found")
		}
		return nil, err
	}
	return s.saveAndInvalidate(ctx, product, "Failed to update variant")
}

// RemoveVariant removes a variant from an owned product
func (s *ProductService) RemoveVariant(ctx context.Context, userID, productID, variantID uuid.UUID) (*ProductResult, error) {
	product, err := s.findOwnedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if err := product.RemoveVariant(variantID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found")
		}
		return nil, err
	}
	return s.saveAndInvalidate(ctx, product, "Failed to remove variant")
}

// AddImage adds an image to an owned product
func (s *ProductService) AddImage(ctx context.Context, input AddImageInput) (*ProductResult, error) {
	product, err := s.findOwnedProduct(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if _, err := product.AddImage(input.URL, input.AltText, input.IsPrimary); err != nil {
		return nil, err
	}
	return s.saveAndInvalidate(ctx, product, "Failed to add image")
}

// SetPrimaryImage marks one image as primary, clearing all others
func (s *ProductService) SetPrimaryImage(ctx context.Context, userID, productID, imageID uuid.UUID) (*ProductResult, error) {
	product, err := s.findOwnedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if err := product.SetPrimaryImage(imageID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("IMAGE_NOT_FOUND", "Image not found")
		}
		return nil, err
	}
	return s.saveAndInvalidate(ctx, product, "Failed to set primary image")
}

// RemoveImage removes an image from an owned product
func (s *ProductService) RemoveImage(ctx context.Context, userID, productID, imageID uuid.UUID) (*ProductResult, error) {
	product, err := s.findOwnedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if err := product.RemoveImage(imageID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("IMAGE_NOT_FOUND", "Image not found")
		}
		return nil, err
	}
	return s.saveAndInvalidate(ctx, product, "Failed to remove image")
}

func (s *ProductService) requireApprovedVendor(ctx context.Context, userID uuid.UUID) (*vendor.Profile, error) {
	profile, err := s.profileRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("VENDOR_NOT_FOUND", "No vendor profile for this account")
	}
	if !profile.IsApproved() {
		return nil, shared.ErrVendorNotApproved
	}
	return profile, nil
}

// findOwnedProduct loads a product and verifies the calling vendor owns
// it. Foreign products are reported as not found.
func (s *ProductService) findOwnedProduct(ctx context.Context, userID, productID uuid.UUID) (*catalog.Product, error) {
	profile, err := s.requireApprovedVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}
	if product.VendorID != profile.ID {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}
	return product, nil
}

func (s *ProductService) ensureUniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; i <= maxSlugAttempts; i++ {
		taken, err := s.productRepo.ExistsBySlug(ctx, slug)
		if err != nil {
			s.logger.Error("Failed to check product slug", zap.Error(err))
			return "", shared.NewDomainError("INTERNAL_ERROR", "Failed to save product")
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return "", shared.NewDomainError("SLUG_EXHAUSTED", "Could not generate a unique product slug")
}

func (s *ProductService) saveAndInvalidate(ctx context.Context, product *catalog.Product, failMsg string) (*ProductResult, error) {
	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", failMsg)
	}
	s.invalidate(ctx, product.ID)
	result := toProductResult(product)
	return &result, nil
}

func (s *ProductService) invalidate(ctx context.Context, productID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, productID.String()); err != nil {
		s.logger.Warn("Product cache invalidation failed", zap.Error(err))
	}
}

func parseModifier(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	modifier, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, shared.NewDomainError("INVALID_PRICE", "Price modifier is not a valid amount")
	}
	return modifier, nil
}
