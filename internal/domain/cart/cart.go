package cart

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
)

// Quantity bounds for a single cart line
const (
	MinItemQuantity = 1
	MaxItemQuantity = 99
)

// Item is a line in a cart, unique per (cart, product, variant)
type Item struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cart is the per-user pre-purchase selection, created lazily and
// destroyed on successful checkout.
type Cart struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID
	Items  []Item
}

// NewCart creates an empty cart for a user
func NewCart(userID uuid.UUID) (*Cart, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Items:             make([]Item, 0),
	}, nil
}

// IsEmpty returns true if the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItem returns the line matching (product, variant), or nil
func (c *Cart) FindItem(productID uuid.UUID, variantID *uuid.UUID) *Item {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		if sameVariant(c.Items[i].VariantID, variantID) {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItem adds a product (optionally a specific variant) to the cart.
// If the same (product, variant) line already exists, the quantities
// are merged; the merged quantity must stay within bounds.
func (c *Cart) AddItem(productID uuid.UUID, variantID *uuid.UUID, quantity int) (*Item, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity < MinItemQuantity || quantity > MaxItemQuantity {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be between 1 and 99")
	}

	now := time.Now()
	if existing := c.FindItem(productID, variantID); existing != nil {
		merged := existing.Quantity + quantity
		if merged > MaxItemQuantity {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be between 1 and 99")
		}
		existing.Quantity = merged
		existing.UpdatedAt = now
		c.UpdatedAt = now
		return existing, nil
	}

	item := Item{
		ID:        uuid.New(),
		CartID:    c.ID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.Items = append(c.Items, item)
	c.UpdatedAt = now
	return &c.Items[len(c.Items)-1], nil
}

// UpdateItemQuantity sets the quantity of an existing line
func (c *Cart) UpdateItemQuantity(itemID uuid.UUID, quantity int) error {
	if quantity < MinItemQuantity || quantity > MaxItemQuantity {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be between 1 and 99")
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			now := time.Now()
			c.Items[i].Quantity = quantity
			c.Items[i].UpdatedAt = now
			c.UpdatedAt = now
			return nil
		}
	}
	return shared.ErrNotFound
}

// RemoveItem removes a line from the cart
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.ErrNotFound
}

// Clear removes all lines from the cart
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
	c.UpdatedAt = time.Now()
}

// TotalQuantity returns the sum of all line quantities
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func sameVariant(a, b *uuid.UUID) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
