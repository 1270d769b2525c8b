package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for the Cart aggregate
type Repository interface {
	// FindByUser finds the user's cart with its items, or ErrNotFound
	FindByUser(ctx context.Context, userID uuid.UUID) (*Cart, error)
	// FindOrCreateByUser finds the user's cart, creating an empty one
	// if it does not exist yet
	FindOrCreateByUser(ctx context.Context, userID uuid.UUID) (*Cart, error)
	// Save persists the cart and its items
	Save(ctx context.Context, cart *Cart) error
	// DeleteItems removes all items from a cart
	DeleteItems(ctx context.Context, cartID uuid.UUID) error
}
