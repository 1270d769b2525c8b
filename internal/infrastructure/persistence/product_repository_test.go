package persistence

import (
	"context"
	"testing"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared/valueobject"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProductTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ProductModel{}, &models.VariantModel{}, &models.ProductImageModel{})
	require.NoError(t, err)

	return db
}

func newStoredProduct(t *testing.T, vendorID uuid.UUID, name, price string, stock int) *catalog.Product {
	money, err := valueobject.NewMoneyUSDFromString(price)
	require.NoError(t, err)
	product, err := catalog.NewProduct(vendorID, uuid.New(), name, "Hand made", money, stock)
	require.NoError(t, err)
	return product
}

func TestGormProductRepository_Save(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("round-trips a product with variants and images", func(t *testing.T) {
		product := newStoredProduct(t, uuid.New(), "Beeswax Candle", "24.99", 40)
		_, err := product.AddVariant("Large", "CANDLE-L", decimal.RequireFromString("5.00"), 12)
		require.NoError(t, err)
		_, err = product.AddImage("https://cdn.example.com/candle.jpg", "Candle", true)
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "beeswax-candle", found.Slug)
		assert.True(t, found.BasePrice.Equal(decimal.RequireFromString("24.99")))
		require.Len(t, found.Variants, 1)
		assert.Equal(t, "CANDLE-L", found.Variants[0].SKU)
		require.Len(t, found.Images, 1)
		assert.True(t, found.Images[0].IsPrimary)
	})

	t.Run("removed variants are deleted on save", func(t *testing.T) {
		product := newStoredProduct(t, uuid.New(), "Oak Shelf", "89.00", 5)
		kept, err := product.AddVariant("Short", "SHELF-S", decimal.Zero, 3)
		require.NoError(t, err)
		keptSKU := kept.SKU
		dropped, err := product.AddVariant("Long", "SHELF-L", decimal.RequireFromString("20.00"), 2)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, product))

		require.NoError(t, product.RemoveVariant(dropped.ID))
		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, found.Variants, 1)
		assert.Equal(t, keptSKU, found.Variants[0].SKU)
	})
}

func TestGormProductRepository_FindBySlug(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := newStoredProduct(t, uuid.New(), "Linen Apron", "32.50", 10)
	require.NoError(t, repo.Save(ctx, product))

	t.Run("finds by slug", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "linen-apron")
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := repo.FindBySlug(ctx, "no-such-thing")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("ExistsBySlug reflects stored slugs", func(t *testing.T) {
		exists, err := repo.ExistsBySlug(ctx, "linen-apron")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsBySlug(ctx, "linen-apron-2")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormProductRepository_FindAll(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	vendorID := uuid.New()

	active := newStoredProduct(t, vendorID, "Active Soap", "6.00", 30)
	require.NoError(t, repo.Save(ctx, active))

	hidden := newStoredProduct(t, vendorID, "Hidden Soap", "6.00", 30)
	hidden.Deactivate()
	require.NoError(t, repo.Save(ctx, hidden))

	other := newStoredProduct(t, uuid.New(), "Other Soap", "6.00", 30)
	require.NoError(t, repo.Save(ctx, other))

	t.Run("filters by vendor and active flag", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{
			"vendor_id": vendorID,
			"is_active": true,
		}

		products, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, active.ID, products[0].ID)
	})

	t.Run("counts by vendor", func(t *testing.T) {
		total, err := repo.CountByVendor(ctx, vendorID, false)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		activeOnly, err := repo.CountByVendor(ctx, vendorID, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), activeOnly)
	})
}

func TestGormProductRepository_FindLowStock(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	vendorID := uuid.New()

	low := newStoredProduct(t, vendorID, "Nearly Gone", "12.00", 2)
	require.NoError(t, repo.Save(ctx, low))

	plenty := newStoredProduct(t, vendorID, "Well Stocked", "12.00", 80)
	require.NoError(t, repo.Save(ctx, plenty))

	inactive := newStoredProduct(t, vendorID, "Retired", "12.00", 1)
	inactive.Deactivate()
	require.NoError(t, repo.Save(ctx, inactive))

	products, err := repo.FindLowStock(ctx, vendorID, 5)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, low.ID, products[0].ID)
}

func TestGormProductRepository_Delete(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := newStoredProduct(t, uuid.New(), "Short Lived", "3.00", 1)
	_, err := product.AddVariant("Only", "SHORT-1", decimal.Zero, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err = repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var variantCount int64
	require.NoError(t, db.Model(&models.VariantModel{}).Where("product_id = ?", product.ID).Count(&variantCount).Error)
	assert.Zero(t, variantCount)
}
