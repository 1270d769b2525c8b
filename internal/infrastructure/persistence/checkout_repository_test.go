package persistence

import (
	"context"
	"testing"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/order"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCheckoutTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.OrderModel{}, &models.OrderItemModel{},
		&models.ProductModel{}, &models.VariantModel{}, &models.ProductImageModel{},
		&models.CartModel{}, &models.CartItemModel{},
	)
	require.NoError(t, err)

	return db
}

type checkoutTestState struct {
	db        *gorm.DB
	productID uuid.UUID
	variantID uuid.UUID
	cartID    uuid.UUID
}

// seedCheckoutState stores a product with 40 base stock, a variant with
// 12, and a cart holding two lines.
func seedCheckoutState(t *testing.T, db *gorm.DB) checkoutTestState {
	productRepo := NewGormProductRepository(db)
	cartRepo := NewGormCartRepository(db)
	ctx := context.Background()

	product := newStoredProduct(t, uuid.New(), "Beeswax Candle", "24.99", 40)
	variant, err := product.AddVariant("Large", "CANDLE-L", decimal.RequireFromString("5.00"), 12)
	require.NoError(t, err)
	variantID := variant.ID
	require.NoError(t, productRepo.Save(ctx, product))

	c, err := cartRepo.FindOrCreateByUser(ctx, uuid.New())
	require.NoError(t, err)
	_, err = c.AddItem(product.ID, nil, 3)
	require.NoError(t, err)
	_, err = c.AddItem(product.ID, &variantID, 2)
	require.NoError(t, err)
	require.NoError(t, cartRepo.Save(ctx, c))

	return checkoutTestState{
		db:        db,
		productID: product.ID,
		variantID: variantID,
		cartID:    c.ID,
	}
}

func (s checkoutTestState) productStock(t *testing.T) int {
	var model models.ProductModel
	require.NoError(t, s.db.First(&model, "id = ?", s.productID).Error)
	return model.Stock
}

func (s checkoutTestState) variantStock(t *testing.T) int {
	var model models.VariantModel
	require.NoError(t, s.db.First(&model, "id = ?", s.variantID).Error)
	return model.Stock
}

func (s checkoutTestState) cartItemCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, s.db.Model(&models.CartItemModel{}).Where("cart_id = ?", s.cartID).Count(&count).Error)
	return count
}

func TestGormCheckoutRepository_CreateOrdersAndClearCart(t *testing.T) {
	t.Run("creates orders, decrements stock and clears the cart", func(t *testing.T) {
		db := setupCheckoutTestDB(t)
		state := seedCheckoutState(t, db)
		repo := NewGormCheckoutRepository(db)
		ctx := context.Background()

		o := newStoredOrder(t, uuid.New(), uuid.New(), "Beeswax Candle", "24.99", 3)
		require.NoError(t, o.MarkPaid("card", "mock_txn_1"))

		decrements := []order.StockDecrement{
			{ProductID: state.productID, Quantity: 3},
			{ProductID: state.productID, VariantID: &state.variantID, Quantity: 2},
		}

		err := repo.CreateOrdersAndClearCart(ctx, []*order.Order{o}, decrements, state.cartID)
		require.NoError(t, err)

		orderRepo := NewGormOrderRepository(db)
		found, err := orderRepo.FindByOrderID(ctx, o.OrderID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusProcessing, found.Status)
		require.Len(t, found.Items, 1)

		assert.Equal(t, 37, state.productStock(t))
		assert.Equal(t, 10, state.variantStock(t))
		assert.Zero(t, state.cartItemCount(t))
	})

	t.Run("a mid-transaction failure rolls everything back", func(t *testing.T) {
		db := setupCheckoutTestDB(t)
		state := seedCheckoutState(t, db)
		repo := NewGormCheckoutRepository(db)
		ctx := context.Background()

		o := newStoredOrder(t, uuid.New(), uuid.New(), "Beeswax Candle", "24.99", 3)
		require.NoError(t, o.MarkPaid("card", "mock_txn_2"))

		decrements := []order.StockDecrement{
			{ProductID: state.productID, Quantity: 3},
		}

		// The same order twice violates the primary key on the second
		// insert, after the first order and its items are written.
		err := repo.CreateOrdersAndClearCart(ctx, []*order.Order{o, o}, decrements, state.cartID)
		require.Error(t, err)

		var orderCount int64
		require.NoError(t, db.Model(&models.OrderModel{}).Count(&orderCount).Error)
		assert.Zero(t, orderCount, "no orders should survive the rollback")

		assert.Equal(t, 40, state.productStock(t))
		assert.Equal(t, 12, state.variantStock(t))
		assert.Equal(t, int64(2), state.cartItemCount(t))
	})
}
