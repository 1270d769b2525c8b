package catalog

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCategoryInput contains input for creating a category
type CreateCategoryInput struct {
	Name     string     `json:"name" binding:"required,max=100"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// UpdateCategoryInput contains editable category fields
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       string     `json:"name" binding:"required,max=100"`
	ParentID   *uuid.UUID `json:"parent_id"`
	IsActive   *bool      `json:"is_active"`
}

// CategoryResult is the category representation returned to clients
type CategoryResult struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	IsActive bool       `json:"is_active"`
}

// CreateProductInput contains input for creating a product
type CreateProductInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Name        string    `json:"name" binding:"required,max=200"`
	Description string    `json:"description"`
	BasePrice   string    `json:"base_price" binding:"required"`
	Stock       int       `json:"stock" binding:"min=0"`
}

// UpdateProductInput contains editable product fields
type UpdateProductInput struct {
	UserID      uuid.UUID
	ProductID   uuid.UUID
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Name        string    `json:"name" binding:"required,max=200"`
	Description string    `json:"description"`
	BasePrice   string    `json:"base_price" binding:"required"`
	Stock       int       `json:"stock" binding:"min=0"`
}

// ListProductsInput filters the public product listing
type ListProductsInput struct {
	CategoryID *uuid.UUID `form:"category_id"`
	VendorID   *uuid.UUID `form:"vendor_id"`
	Featured   *bool      `form:"featured"`
	Search     string     `form:"search"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
}

// AddVariantInput contains input for adding a product variant
type AddVariantInput struct {
	UserID        uuid.UUID
	ProductID     uuid.UUID
	Name          string `json:"name" binding:"required,max=100"`
	SKU           string `json:"sku" binding:"required,max=64"`
	PriceModifier string `json:"price_modifier"`
	Stock         int    `json:"stock" binding:"min=0"`
}

// UpdateVariantInput contains editable variant fields
type UpdateVariantInput struct {
	UserID        uuid.UUID
	ProductID     uuid.UUID
	VariantID     uuid.UUID
	PriceModifier string `json:"price_modifier"`
	Stock         int    `json:"stock" binding:"min=0"`
}

// AddImageInput contains input for adding a product image
type AddImageInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	URL       string `json:"url" binding:"required,url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
}

// VariantResult is the variant representation returned to clients
type VariantResult struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
}

// ImageResult is the image representation returned to clients
type ImageResult struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	AltText   string    `json:"alt_text"`
	IsPrimary bool      `json:"is_primary"`
	SortOrder int       `json:"sort_order"`
}

// ProductResult is the product representation returned to clients
type ProductResult struct {
	ID          uuid.UUID       `json:"id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"is_active"`
	IsFeatured  bool            `json:"is_featured"`
	Variants    []VariantResult `json:"variants"`
	Images      []ImageResult   `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateReviewInput contains input for submitting a review
type CreateReviewInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"max=2000"`
}

// UpdateReviewInput contains editable review fields
type UpdateReviewInput struct {
	UserID   uuid.UUID
	ReviewID uuid.UUID
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=2000"`
}

// ReviewResult is the review representation returned to clients
type ReviewResult struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductReviewsResult is a page of reviews with the running average
type ProductReviewsResult struct {
	Reviews       []ReviewResult `json:"reviews"`
	AverageRating float64        `json:"average_rating"`
}

func toCategoryResult(c *catalog.Category) CategoryResult {
	return CategoryResult{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ParentID: c.ParentID,
		IsActive: c.IsActive,
	}
}

func toProductResult(p *catalog.Product) ProductResult {
	variants := make([]VariantResult, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantResult{
			ID:            v.ID,
			Name:          v.Name,
			SKU:           v.SKU,
			PriceModifier: v.PriceModifier,
			Price:         v.VariantPrice(p.BasePrice),
			Stock:         v.Stock,
		})
	}
	images := make([]ImageResult, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageResult{
			ID:        img.ID,
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		})
	}
	return ProductResult{
		ID:          p.ID,
		VendorID:    p.VendorID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		IsFeatured:  p.IsFeatured,
		Variants:    variants,
		Images:      images,
		CreatedAt:   p.CreatedAt,
	}
}

func toReviewResult(r *catalog.Review) ReviewResult {
	return ReviewResult{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
