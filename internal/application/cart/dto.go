package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemInput contains input for adding a product to the cart
type AddItemInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	VariantID *uuid.UUID `json:"variant_id"`
	Quantity  int        `json:"quantity" binding:"required,min=1,max=99"`
}

// UpdateItemInput contains input for changing a line quantity
type UpdateItemInput struct {
	UserID   uuid.UUID
	ItemID   uuid.UUID
	Quantity int `json:"quantity" binding:"required,min=1,max=99"`
}

// ItemResult is one cart line enriched with product details
type ItemResult struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSlug string          `json:"product_slug"`
	VariantID   *uuid.UUID      `json:"variant_id,omitempty"`
	VariantName string          `json:"variant_name,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
	InStock     bool            `json:"in_stock"`
}

// CartResult is the cart representation returned to clients
type CartResult struct {
	ID            uuid.UUID       `json:"id"`
	Items         []ItemResult    `json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}
