package identity

import (
	"context"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines persistence operations for the User aggregate
type UserRepository interface {
	// FindByID finds a user (with profile) by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// FindByEmail finds a user by normalized email
	FindByEmail(ctx context.Context, email string) (*User, error)
	// ExistsByEmail checks if an account with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Save creates or updates a user and its profile
	Save(ctx context.Context, user *User) error
	// Delete removes a user
	Delete(ctx context.Context, id uuid.UUID) error
}

// AddressRepository defines persistence operations for addresses
type AddressRepository interface {
	// FindByID finds an address by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Address, error)
	// FindByUser returns all addresses owned by a user
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Address, error)
	// Save creates or updates an address. When the address has IsDefault
	// set, sibling defaults for the same (user, type) are cleared in the
	// same transaction.
	Save(ctx context.Context, address *Address) error
	// Delete removes an address
	Delete(ctx context.Context, id uuid.UUID) error
}
