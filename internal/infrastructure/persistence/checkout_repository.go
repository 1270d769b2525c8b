package persistence

import (
	"context"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/order"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCheckoutRepository implements order.CheckoutRepository using GORM
type GormCheckoutRepository struct {
	db *gorm.DB
}

// NewGormCheckoutRepository creates a new GormCheckoutRepository
func NewGormCheckoutRepository(db *gorm.DB) *GormCheckoutRepository {
	return &GormCheckoutRepository{db: db}
}

// CreateOrdersAndClearCart creates all orders with their items, applies
// the stock decrements, and empties the cart in a single transaction.
// A failure at any point rolls everything back.
func (r *GormCheckoutRepository) CreateOrdersAndClearCart(ctx context.Context, orders []*order.Order, decrements []order.StockDecrement, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			model := models.OrderModelFromDomain(o)
			if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Create(model).Error; err != nil {
				return err
			}
		}

		for _, d := range decrements {
			if d.VariantID != nil {
				if err := tx.Model(&models.VariantModel{}).
					Where("id = ?", *d.VariantID).
					Update("stock", gorm.Expr("stock - ?", d.Quantity)).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Model(&models.ProductModel{}).
				Where("id = ?", d.ProductID).
				Update("stock", gorm.Expr("stock - ?", d.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Where("cart_id = ?", cartID).Delete(&models.CartItemModel{}).Error
	})
}

// Ensure GormCheckoutRepository implements CheckoutRepository
var _ order.CheckoutRepository = (*GormCheckoutRepository)(nil)
