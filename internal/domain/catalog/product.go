package catalog

import (
	"strings"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Variant is a purchasable SKU-level refinement of a product with its
// own stock and price offset. Final price = base price + modifier.
type Variant struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	Name          string
	SKU           string
	PriceModifier decimal.Decimal
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Image is a product photo. At most one image per product is primary.
type Image struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	URL       string
	AltText   string
	IsPrimary bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is the catalog aggregate root, owned by exactly one vendor.
type Product struct {
	shared.BaseAggregateRoot
	VendorID    uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Slug        string
	Description string
	BasePrice   decimal.Decimal
	Stock       int
	IsActive    bool
	IsFeatured  bool
	Variants    []Variant
	Images      []Image
}

// NewProduct creates a new product for a vendor. The slug is derived
// from the name; the repository appends a suffix on collision.
func NewProduct(vendorID, categoryID uuid.UUID, name, description string, basePrice valueobject.Money, stock int) (*Product, error) {
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 200 characters")
	}
	if !basePrice.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Base price must be positive")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VendorID:          vendorID,
		CategoryID:        categoryID,
		Name:              name,
		Slug:              Slugify(name),
		Description:       description,
		BasePrice:         basePrice.Amount(),
		Stock:             stock,
		IsActive:          true,
		Variants:          make([]Variant, 0),
		Images:            make([]Image, 0),
	}, nil
}

// Update changes the product's editable fields
func (p *Product) Update(categoryID uuid.UUID, name, description string, basePrice valueobject.Money, stock int) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if !basePrice.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Base price must be positive")
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	p.CategoryID = categoryID
	p.Name = name
	p.Slug = Slugify(name)
	p.Description = description
	p.BasePrice = basePrice.Amount()
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}

// GetBasePriceMoney returns the base price as Money
func (p *Product) GetBasePriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.BasePrice)
}

// AddVariant adds a new SKU variant to the product
func (p *Product) AddVariant(name, sku string, priceModifier decimal.Decimal, stock int) (*Variant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_VARIANT_NAME", "Variant name cannot be empty")
	}
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if p.BasePrice.Add(priceModifier).IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
	}
	for _, v := range p.Variants {
		if v.SKU == sku {
			return nil, shared.NewDomainError("DUPLICATE_SKU", "A variant with this SKU already exists")
		}
	}

	now := time.Now()
	variant := Variant{
		ID:            uuid.New(),
		ProductID:     p.ID,
		Name:          name,
		SKU:           sku,
		PriceModifier: priceModifier,
		Stock:         stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.Variants = append(p.Variants, variant)
	p.UpdatedAt = now
	return &variant, nil
}

// UpdateVariant updates an existing variant's price modifier and stock
func (p *Product) UpdateVariant(variantID uuid.UUID, priceModifier decimal.Decimal, stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if p.BasePrice.Add(priceModifier).IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
	}
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			p.Variants[i].PriceModifier = priceModifier
			p.Variants[i].Stock = stock
			p.Variants[i].UpdatedAt = time.Now()
			p.UpdatedAt = p.Variants[i].UpdatedAt
			return nil
		}
	}
	return shared.ErrNotFound
}

// RemoveVariant removes a variant from the product
func (p *Product) RemoveVariant(variantID uuid.UUID) error {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			p.Variants = append(p.Variants[:i], p.Variants[i+1:]...)
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.ErrNotFound
}

// FindVariant returns the variant with the given ID, or nil
func (p *Product) FindVariant(variantID uuid.UUID) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// VariantPrice returns base price + the variant's modifier
func (v *Variant) VariantPrice(basePrice decimal.Decimal) decimal.Decimal {
	return basePrice.Add(v.PriceModifier)
}

// AddImage adds an image. Setting isPrimary clears the primary flag on
// every other image of the product in the same operation, keeping the
// at-most-one-primary invariant inside the aggregate.
func (p *Product) AddImage(url, altText string, isPrimary bool) (*Image, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot be empty")
	}

	now := time.Now()
	image := Image{
		ID:        uuid.New(),
		ProductID: p.ID,
		URL:       url,
		AltText:   altText,
		IsPrimary: isPrimary,
		SortOrder: len(p.Images),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if isPrimary {
		p.clearPrimaryImages()
	}
	p.Images = append(p.Images, image)
	p.UpdatedAt = now
	return &image, nil
}

// SetPrimaryImage marks one image as primary and clears all siblings
func (p *Product) SetPrimaryImage(imageID uuid.UUID) error {
	found := false
	for i := range p.Images {
		if p.Images[i].ID == imageID {
			found = true
		}
	}
	if !found {
		return shared.ErrNotFound
	}
	now := time.Now()
	for i := range p.Images {
		isTarget := p.Images[i].ID == imageID
		if p.Images[i].IsPrimary != isTarget {
			p.Images[i].IsPrimary = isTarget
			p.Images[i].UpdatedAt = now
		}
	}
	p.UpdatedAt = now
	return nil
}

// RemoveImage removes an image from the product
func (p *Product) RemoveImage(imageID uuid.UUID) error {
	for i := range p.Images {
		if p.Images[i].ID == imageID {
			p.Images = append(p.Images[:i], p.Images[i+1:]...)
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.ErrNotFound
}

// PrimaryImage returns the primary image, or nil if none is set
func (p *Product) PrimaryImage() *Image {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	return nil
}

func (p *Product) clearPrimaryImages() {
	for i := range p.Images {
		p.Images[i].IsPrimary = false
	}
}

// Activate restores the product to the public catalog
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
}

// Deactivate hides the product from the public catalog
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}

// SetFeatured toggles the featured flag
func (p *Product) SetFeatured(featured bool) {
	p.IsFeatured = featured
	p.UpdatedAt = time.Now()
}
