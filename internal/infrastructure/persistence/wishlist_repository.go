package persistence

import (
	"context"
	"errors"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/wishlist"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWishlistRepository implements wishlist.Repository using GORM
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewGormWishlistRepository creates a new GormWishlistRepository
func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// FindByUser finds the user's wishlist with its items
func (r *GormWishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*wishlist.Wishlist, error) {
	var model models.WishlistModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOrCreateByUser finds the user's wishlist, creating an empty one
// if it does not exist yet
func (r *GormWishlistRepository) FindOrCreateByUser(ctx context.Context, userID uuid.UUID) (*wishlist.Wishlist, error) {
	existing, err := r.FindByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	created, err := wishlist.NewWishlist(userID)
	if err != nil {
		return nil, err
	}
	if err := r.Save(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Save persists the wishlist and its items. Items removed from the
// aggregate are deleted so the stored rows mirror the aggregate.
func (r *GormWishlistRepository) Save(ctx context.Context, w *wishlist.Wishlist) error {
	model := models.WishlistModelFromDomain(w)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(model).Error; err != nil {
			return err
		}

		itemIDs := make([]uuid.UUID, len(model.Items))
		for i, item := range model.Items {
			itemIDs[i] = item.ID
		}
		itemQuery := tx.Where("wishlist_id = ?", model.ID)
		if len(itemIDs) > 0 {
			itemQuery = itemQuery.Where("id NOT IN ?", itemIDs)
		}
		return itemQuery.Delete(&models.WishlistItemModel{}).Error
	})
}

// Ensure GormWishlistRepository implements wishlist.Repository
var _ wishlist.Repository = (*GormWishlistRepository)(nil)
