package wishlist

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for the Wishlist aggregate
type Repository interface {
	// FindByUser finds the user's wishlist with its items, or ErrNotFound
	FindByUser(ctx context.Context, userID uuid.UUID) (*Wishlist, error)
	// FindOrCreateByUser finds the user's wishlist, creating an empty
	// one if it does not exist yet
	FindOrCreateByUser(ctx context.Context, userID uuid.UUID) (*Wishlist, error)
	// Save persists the wishlist and its items
	Save(ctx context.Context, w *Wishlist) error
}
