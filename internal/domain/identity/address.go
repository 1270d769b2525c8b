package identity

import (
	"strings"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
)

// AddressType distinguishes billing and shipping addresses
type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

// IsValid checks if the address type is known
func (t AddressType) IsValid() bool {
	return t == AddressTypeBilling || t == AddressTypeShipping
}

// Address is a user-owned billing or shipping address.
// At most one address per (user, type) may be the default; the
// persistence layer clears sibling defaults in the same transaction
// that saves an address with IsDefault set.
type Address struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID
	Type      AddressType
	Street    string
	Apartment string
	City      string
	State     string
	Zip       string
	Country   string
	IsDefault bool
}

// NewAddress creates a new address for a user
func NewAddress(userID uuid.UUID, addrType AddressType, street, apartment, city, state, zip, country string) (*Address, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if !addrType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ADDRESS_TYPE", "Address type must be billing or shipping")
	}
	if strings.TrimSpace(street) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Street cannot be empty")
	}
	if strings.TrimSpace(city) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "City cannot be empty")
	}
	if strings.TrimSpace(country) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Country cannot be empty")
	}

	return &Address{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Type:              addrType,
		Street:            strings.TrimSpace(street),
		Apartment:         strings.TrimSpace(apartment),
		City:              strings.TrimSpace(city),
		State:             strings.TrimSpace(state),
		Zip:               strings.TrimSpace(zip),
		Country:           strings.TrimSpace(country),
	}, nil
}

// Update replaces the address fields
func (a *Address) Update(street, apartment, city, state, zip, country string) error {
	if strings.TrimSpace(street) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Street cannot be empty")
	}
	if strings.TrimSpace(city) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "City cannot be empty")
	}
	if strings.TrimSpace(country) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Country cannot be empty")
	}
	a.Street = strings.TrimSpace(street)
	a.Apartment = strings.TrimSpace(apartment)
	a.City = strings.TrimSpace(city)
	a.State = strings.TrimSpace(state)
	a.Zip = strings.TrimSpace(zip)
	a.Country = strings.TrimSpace(country)
	a.UpdatedAt = time.Now()
	return nil
}

// MarkDefault flags this address as the default for its type
func (a *Address) MarkDefault() {
	a.IsDefault = true
	a.UpdatedAt = time.Now()
}

// ClearDefault removes the default flag
func (a *Address) ClearDefault() {
	a.IsDefault = false
	a.UpdatedAt = time.Now()
}

// Snapshot formats the address as a single frozen line, used by orders
// so they never reference the live address row again.
func (a *Address) Snapshot() string {
	parts := []string{a.Street}
	if a.Apartment != "" {
		parts = append(parts, a.Apartment)
	}
	parts = append(parts, a.City, a.State, a.Zip, a.Country)
	return strings.Join(parts, ", ")
}
