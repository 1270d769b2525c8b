package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/vendor"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVendorProfileRepository implements vendor.ProfileRepository using GORM
type GormVendorProfileRepository struct {
	db *gorm.DB
}

// NewGormVendorProfileRepository creates a new GormVendorProfileRepository
func NewGormVendorProfileRepository(db *gorm.DB) *GormVendorProfileRepository {
	return &GormVendorProfileRepository{db: db}
}

// FindByID finds a vendor profile by ID
func (r *GormVendorProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.Profile, error) {
	var model models.VendorProfileModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUser finds the vendor profile linked to a user
func (r *GormVendorProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*vendor.Profile, error) {
	var model models.VendorProfileModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds vendor profiles matching the filter
func (r *GormVendorProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]vendor.Profile, error) {
	var profileModels []models.VendorProfileModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.VendorProfileModel{}), filter)

	if err := query.Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]vendor.Profile, len(profileModels))
	for i, model := range profileModels {
		profiles[i] = *model.ToDomain()
	}
	return profiles, nil
}

// FindByStatus finds vendor profiles in a given status
func (r *GormVendorProfileRepository) FindByStatus(ctx context.Context, status vendor.Status, filter shared.Filter) ([]vendor.Profile, error) {
	var profileModels []models.VendorProfileModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.VendorProfileModel{}).
			Where("status = ?", status),
		filter,
	)

	if err := query.Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]vendor.Profile, len(profileModels))
	for i, model := range profileModels {
		profiles[i] = *model.ToDomain()
	}
	return profiles, nil
}

// ExistsByBusinessName checks business name uniqueness
func (r *GormVendorProfileRepository) ExistsByBusinessName(ctx context.Context, businessName string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.VendorProfileModel{}).
		Where("LOWER(business_name) = LOWER(?)", businessName).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByUser checks whether a user already has an application
func (r *GormVendorProfileRepository) ExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.VendorProfileModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a vendor profile
func (r *GormVendorProfileRepository) Save(ctx context.Context, profile *vendor.Profile) error {
	model := models.VendorProfileModelFromDomain(profile)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithUserFlag persists the profile and flips the linked user's
// vendor flag in one transaction. A failure on either side rolls back
// both writes.
func (r *GormVendorProfileRepository) SaveWithUserFlag(ctx context.Context, profile *vendor.Profile, isVendor bool) error {
	model := models.VendorProfileModelFromDomain(profile)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model).Error; err != nil {
			return err
		}
		result := tx.Model(&models.UserModel{}).
			Where("id = ?", profile.UserID).
			Update("is_vendor", isVendor)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts vendor profiles matching the filter
func (r *GormVendorProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.VendorProfileModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormVendorProfileRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

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
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormVendorProfileRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("business_name ILIKE ? OR contact_email ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "user_id":
			query = query.Where("user_id = ?", value)
		}
	}

	return query
}

// Ensure GormVendorProfileRepository implements ProfileRepository
var _ vendor.ProfileRepository = (*GormVendorProfileRepository)(nil)
