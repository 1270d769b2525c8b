package wishlist

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
)

// Item is a saved product reference inside a wishlist
type Item struct {
	ID         uuid.UUID
	WishlistID uuid.UUID
	ProductID  uuid.UUID
	CreatedAt  time.Time
}

// Wishlist is the per-user set of saved products, created lazily on
// first use. Items are unique per product.
type Wishlist struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID
	Items  []Item
}

// NewWishlist creates an empty wishlist for a user
func NewWishlist(userID uuid.UUID) (*Wishlist, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	return &Wishlist{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Items:             make([]Item, 0),
	}, nil
}

// Contains reports whether the product is saved
func (w *Wishlist) Contains(productID uuid.UUID) bool {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return true
		}
	}
	return false
}

// Toggle adds the product if absent or removes it if present, and
// returns true when the product ends up in the wishlist.
func (w *Wishlist) Toggle(productID uuid.UUID) (bool, error) {
	if productID == uuid.Nil {
		return false, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	now := time.Now()
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			w.UpdatedAt = now
			return false, nil
		}
	}
	w.Items = append(w.Items, Item{
		ID:         uuid.New(),
		WishlistID: w.ID,
		ProductID:  productID,
		CreatedAt:  now,
	})
	w.UpdatedAt = now
	return true, nil
}

// Remove deletes a saved product, erroring if it is not present
func (w *Wishlist) Remove(productID uuid.UUID) error {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			w.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.ErrNotFound
}

// Clear removes all saved products
func (w *Wishlist) Clear() {
	w.Items = w.Items[:0]
	w.UpdatedAt = time.Now()
}
