package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/identity"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByID finds an address by ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUser finds all addresses owned by a user
func (r *GormAddressRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]identity.Address, error) {
	var addressModels []models.AddressModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.AddressModel{}).
			Where("user_id = ?", userID),
		filter,
	)

	if err := query.Find(&addressModels).Error; err != nil {
		return nil, err
	}

	addresses := make([]identity.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = *model.ToDomain()
	}
	return addresses, nil
}

// Save creates or updates an address. When the address is the default
// for its type, sibling defaults for the same (user, type) are cleared
// in the same transaction so at most one default survives.
func (r *GormAddressRepository) Save(ctx context.Context, address *identity.Address) error {
	model := models.AddressModelFromDomain(address)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if model.IsDefault {
			if err := tx.Model(&models.AddressModel{}).
				Where("user_id = ? AND type = ? AND id <> ?", model.UserID, model.Type, model.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(model).Error
	})
}

// Delete deletes an address
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormAddressRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "is_default":
			query = query.Where("is_default = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("is_default DESC, created_at DESC")
	}

	return query
}

// Ensure GormAddressRepository implements AddressRepository
var _ identity.AddressRepository = (*GormAddressRepository)(nil)
