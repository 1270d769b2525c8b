package models

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/cart"
	"github.com/google/uuid"
)

// CartModel is the persistence model for the Cart aggregate
type CartModel struct {
	AggregateModel
	UserID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Items  []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the persistence model for a cart line
type CartItemModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	CartID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index"`
	VariantID *uuid.UUID `gorm:"type:uuid"`
	Quantity  int        `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts the persistence model to a domain Cart aggregate
func (m *CartModel) ToDomain() *cart.Cart {
	items := make([]cart.Item, len(m.Items))
	for i, item := range m.Items {
		items[i] = cart.Item{
			ID:        item.ID,
			CartID:    item.CartID,
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		}
	}
	return &cart.Cart{
		BaseAggregateRoot: m.toAggregateRoot(),
		UserID:            m.UserID,
		Items:             items,
	}
}

// FromDomain populates the persistence model from a domain Cart
func (m *CartModel) FromDomain(c *cart.Cart) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.UserID = c.UserID
	m.Items = make([]CartItemModel, len(c.Items))
	for i, item := range c.Items {
		m.Items[i] = CartItemModel{
			ID:        item.ID,
			CartID:    item.CartID,
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		}
	}
}

// CartModelFromDomain creates a new persistence model from a domain Cart
func CartModelFromDomain(c *cart.Cart) *CartModel {
	m := &CartModel{}
	m.FromDomain(c)
	return m
}
