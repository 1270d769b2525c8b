package models

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for the Category aggregate
type CategoryModel struct {
	AggregateModel
	Name     string     `gorm:"type:varchar(100);not null"`
	Slug     string     `gorm:"type:varchar(120);not null;uniqueIndex"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	IsActive bool       `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseAggregateRoot: m.toAggregateRoot(),
		Name:              m.Name,
		Slug:              m.Slug,
		ParentID:          m.ParentID,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Category
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Slug = c.Slug
	m.ParentID = c.ParentID
	m.IsActive = c.IsActive
}

// CategoryModelFromDomain creates a new persistence model from a domain Category
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

// ProductModel is the persistence model for the Product aggregate
type ProductModel struct {
	AggregateModel
	VendorID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Name        string              `gorm:"type:varchar(200);not null"`
	Slug        string              `gorm:"type:varchar(130);not null;uniqueIndex"`
	Description string              `gorm:"type:text"`
	BasePrice   decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	Stock       int                 `gorm:"not null;default:0"`
	IsActive    bool                `gorm:"not null;default:true;index"`
	IsFeatured  bool                `gorm:"not null;default:false"`
	Variants    []VariantModel      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images      []ProductImageModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// VariantModel is the persistence model for a product variant
type VariantModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	SKU           string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	PriceModifier decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stock         int             `gorm:"not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (VariantModel) TableName() string {
	return "product_variants"
}

// ProductImageModel is the persistence model for a product image
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	AltText   string    `gorm:"type:varchar(200)"`
	IsPrimary bool      `gorm:"not null;default:false"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ToDomain converts the persistence model to a domain Product aggregate
func (m *ProductModel) ToDomain() *catalog.Product {
	variants := make([]catalog.Variant, len(m.Variants))
	for i, v := range m.Variants {
		variants[i] = catalog.Variant{
			ID:            v.ID,
			ProductID:     v.ProductID,
			Name:          v.Name,
			SKU:           v.SKU,
			PriceModifier: v.PriceModifier,
			Stock:         v.Stock,
			CreatedAt:     v.CreatedAt,
			UpdatedAt:     v.UpdatedAt,
		}
	}
	images := make([]catalog.Image, len(m.Images))
	for i, img := range m.Images {
		images[i] = catalog.Image{
			ID:        img.ID,
			ProductID: img.ProductID,
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
			CreatedAt: img.CreatedAt,
			UpdatedAt: img.UpdatedAt,
		}
	}
	return &catalog.Product{
		BaseAggregateRoot: m.toAggregateRoot(),
		VendorID:          m.VendorID,
		CategoryID:        m.CategoryID,
		Name:              m.Name,
		Slug:              m.Slug,
		Description:       m.Description,
		BasePrice:         m.BasePrice,
		Stock:             m.Stock,
		IsActive:          m.IsActive,
		IsFeatured:        m.IsFeatured,
		Variants:          variants,
		Images:            images,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.VendorID = p.VendorID
	m.CategoryID = p.CategoryID
	m.Name = p.Name
	m.Slug = p.Slug
	m.Description = p.Description
	m.BasePrice = p.BasePrice
	m.Stock = p.Stock
	m.IsActive = p.IsActive
	m.IsFeatured = p.IsFeatured

	m.Variants = make([]VariantModel, len(p.Variants))
	for i, v := range p.Variants {
		m.Variants[i] = VariantModel{
			ID:            v.ID,
			ProductID:     v.ProductID,
			Name:          v.Name,
			SKU:           v.SKU,
			PriceModifier: v.PriceModifier,
			Stock:         v.Stock,
			CreatedAt:     v.CreatedAt,
			UpdatedAt:     v.UpdatedAt,
		}
	}
	m.Images = make([]ProductImageModel, len(p.Images))
	for i, img := range p.Images {
		m.Images[i] = ProductImageModel{
			ID:        img.ID,
			ProductID: img.ProductID,
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
			CreatedAt: img.CreatedAt,
			UpdatedAt: img.UpdatedAt,
		}
	}
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// ReviewModel is the persistence model for the Review aggregate
type ReviewModel struct {
	AggregateModel
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_review_product_user,priority:1"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_product_user,priority:2"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	IsApproved bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "product_reviews"
}

// ToDomain converts the persistence model to a domain Review
func (m *ReviewModel) ToDomain() *catalog.Review {
	return &catalog.Review{
		BaseAggregateRoot: m.toAggregateRoot(),
		ProductID:         m.ProductID,
		UserID:            m.UserID,
		Rating:            m.Rating,
		Comment:           m.Comment,
		IsApproved:        m.IsApproved,
	}
}

// FromDomain populates the persistence model from a domain Review
func (m *ReviewModel) FromDomain(r *catalog.Review) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.ProductID = r.ProductID
	m.UserID = r.UserID
	m.Rating = r.Rating
	m.Comment = r.Comment
	m.IsApproved = r.IsApproved
}

// ReviewModelFromDomain creates a new persistence model from a domain Review
func ReviewModelFromDomain(r *catalog.Review) *ReviewModel {
	m := &ReviewModel{}
	m.FromDomain(r)
	return m
}
