package persistence

import (
	"context"
	"testing"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/identity"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/vendor"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupVendorTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{}, &models.UserProfileModel{}, &models.VendorProfileModel{})
	require.NoError(t, err)

	return db
}

func seedVendorUser(t *testing.T, db *gorm.DB, email string) *identity.User {
	user, err := identity.NewUser(email, "$2a$10$hash", "Sam", "Seller")
	require.NoError(t, err)
	require.NoError(t, NewGormUserRepository(db).Save(context.Background(), user))
	return user
}

func userIsVendor(t *testing.T, db *gorm.DB, user *identity.User) bool {
	var model models.UserModel
	require.NoError(t, db.First(&model, "id = ?", user.ID).Error)
	return model.IsVendor
}

func TestGormVendorProfileRepository_SaveWithUserFlag(t *testing.T) {
	t.Run("commits the profile and the user flag together", func(t *testing.T) {
		db := setupVendorTestDB(t)
		repo := NewGormVendorProfileRepository(db)
		ctx := context.Background()

		user := seedVendorUser(t, db, "sam@example.com")
		profile, err := vendor.NewProfile(user.ID, "Honeycomb Goods", "", "", "")
		require.NoError(t, err)
		require.NoError(t, profile.Approve())

		require.NoError(t, repo.SaveWithUserFlag(ctx, profile, true))

		found, err := repo.FindByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, vendor.StatusApproved, found.Status)
		assert.True(t, userIsVendor(t, db, user))

		require.NoError(t, found.Suspend())
		require.NoError(t, repo.SaveWithUserFlag(ctx, found, false))
		assert.False(t, userIsVendor(t, db, user))
	})

	t.Run("rolls back the profile write when the user row is missing", func(t *testing.T) {
		db := setupVendorTestDB(t)
		repo := NewGormVendorProfileRepository(db)
		ctx := context.Background()

		profile, err := vendor.NewProfile(uuid.New(), "Orphan Goods", "", "", "")
		require.NoError(t, err)
		require.NoError(t, profile.Approve())

		err = repo.SaveWithUserFlag(ctx, profile, true)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByID(ctx, profile.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound, "no profile should survive the rollback")
	})
}
