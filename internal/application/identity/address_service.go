package identity

import (
	"context"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/identity"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddressService manages a user's address book
type AddressService struct {
	addressRepo identity.AddressRepository
	logger      *zap.Logger
}

// NewAddressService creates a new address service
func NewAddressService(addressRepo identity.AddressRepository, logger *zap.Logger) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// ListAddresses returns all addresses owned by the user
func (s *AddressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]AddressResult, error) {
	addresses, err := s.addressRepo.FindByUser(ctx, userID, shared.DefaultFilter())
	if err != nil {
		s.logger.Error("Failed to list addresses", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load addresses")
	}

	results := make([]AddressResult, 0, len(addresses))
	for i := range addresses {
		results = append(results, toAddressResult(&addresses[i]))
	}
	return results, nil
}

// CreateAddress adds an address. When IsDefault is set, the repository
// clears sibling defaults for the same (user, type) in one transaction.
func (s *AddressService) CreateAddress(ctx context.Context, input CreateAddressInput) (*AddressResult, error) {
	address, err := identity.NewAddress(
		input.UserID,
		identity.AddressType(input.Type),
		input.Street, input.Apartment, input.City, input.State, input.Zip, input.Country,
	)
	if err != nil {
		return nil, err
	}

	if input.IsDefault {
		address.MarkDefault()
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		s.logger.Error("Failed to save address", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save address")
	}

	result := toAddressResult(address)
	return &result, nil
}

// UpdateAddress edits an address owned by the caller
func (s *AddressService) UpdateAddress(ctx context.Context, input UpdateAddressInput) (*AddressResult, error) {
	address, err := s.findOwned(ctx, input.AddressID, input.UserID)
	if err != nil {
		return nil, err
	}

	addrType := identity.AddressType(input.Type)
	if !addrType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ADDRESS_TYPE", "Address type must be billing or shipping")
	}
	address.Type = addrType

	if err := address.Update(input.Street, input.Apartment, input.City, input.State, input.Zip, input.Country); err != nil {
		return nil, err
	}

	if input.IsDefault {
		address.MarkDefault()
	} else {
		address.ClearDefault()
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		s.logger.Error("Failed to save address update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save address")
	}

	result := toAddressResult(address)
	return &result, nil
}

// SetDefaultAddress marks an address as the default for its type
func (s *AddressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	address, err := s.findOwned(ctx, addressID, userID)
	if err != nil {
		return err
	}

	address.MarkDefault()

	if err := s.addressRepo.Save(ctx, address); err != nil {
		s.logger.Error("Failed to set default address", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save address")
	}
	return nil
}

// DeleteAddress removes an address owned by the caller
func (s *AddressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	address, err := s.findOwned(ctx, addressID, userID)
	if err != nil {
		return err
	}

	if err := s.addressRepo.Delete(ctx, address.ID); err != nil {
		s.logger.Error("Failed to delete address", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete address")
	}
	return nil
}

// findOwned loads an address and verifies ownership. A foreign address
// is reported as not found rather than forbidden to avoid leaking its
// existence.
func (s *AddressService) findOwned(ctx context.Context, addressID, userID uuid.UUID) (*identity.Address, error) {
	address, err := s.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		return nil, shared.NewDomainError("ADDRESS_NOT_FOUND", "Address not found")
	}
	if address.UserID != userID {
		return nil, shared.NewDomainError("ADDRESS_NOT_FOUND", "Address not found")
	}
	return address, nil
}
