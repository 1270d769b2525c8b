package persistence

import (
	"context"
	"errors"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/cart"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCartRepository implements cart.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUser finds the user's cart with its items
func (r *GormCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	var model models.CartModel
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

// FindOrCreateByUser finds the user's cart, creating an empty one if it
// does not exist yet
func (r *GormCartRepository) FindOrCreateByUser(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	existing, err := r.FindByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	created, err := cart.NewCart(userID)
	if err != nil {
		return nil, err
	}
	if err := r.Save(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Save persists the cart and its items. Items removed from the
// aggregate are deleted so the stored lines mirror the aggregate.
func (r *GormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	model := models.CartModelFromDomain(c)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(model).Error; err != nil {
			return err
		}

		itemIDs := make([]uuid.UUID, len(model.Items))
		for i, item := range model.Items {
			itemIDs[i] = item.ID
		}
		itemQuery := tx.Where("cart_id = ?", model.ID)
		if len(itemIDs) > 0 {
			itemQuery = itemQuery.Where("id NOT IN ?", itemIDs)
		}
		return itemQuery.Delete(&models.CartItemModel{}).Error
	})
}

// DeleteItems removes all items from a cart
func (r *GormCartRepository) DeleteItems(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItemModel{}).Error
}

// Ensure GormCartRepository implements cart.Repository
var _ cart.Repository = (*GormCartRepository)(nil)
