package models

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/wishlist"
	"github.com/google/uuid"
)

// WishlistModel is the persistence model for the Wishlist aggregate
type WishlistModel struct {
	AggregateModel
	UserID uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex"`
	Items  []WishlistItemModel `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (WishlistModel) TableName() string {
	return "wishlists"
}

// WishlistItemModel is the persistence model for a saved product
type WishlistItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	WishlistID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_wishlist_product,priority:1"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_product,priority:2"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// ToDomain converts the persistence model to a domain Wishlist aggregate
func (m *WishlistModel) ToDomain() *wishlist.Wishlist {
	items := make([]wishlist.Item, len(m.Items))
	for i, item := range m.Items {
		items[i] = wishlist.Item{
			ID:         item.ID,
			WishlistID: item.WishlistID,
			ProductID:  item.ProductID,
			CreatedAt:  item.CreatedAt,
		}
	}
	return &wishlist.Wishlist{
		BaseAggregateRoot: m.toAggregateRoot(),
		UserID:            m.UserID,
		Items:             items,
	}
}

// FromDomain populates the persistence model from a domain Wishlist
func (m *WishlistModel) FromDomain(w *wishlist.Wishlist) {
	m.FromDomainAggregateRoot(w.BaseAggregateRoot)
	m.UserID = w.UserID
	m.Items = make([]WishlistItemModel, len(w.Items))
	for i, item := range w.Items {
		m.Items[i] = WishlistItemModel{
			ID:         item.ID,
			WishlistID: item.WishlistID,
			ProductID:  item.ProductID,
			CreatedAt:  item.CreatedAt,
		}
	}
}

// WishlistModelFromDomain creates a new persistence model from a domain
// Wishlist
func WishlistModelFromDomain(w *wishlist.Wishlist) *WishlistModel {
	m := &WishlistModel{}
	m.FromDomain(w)
	return m
}
