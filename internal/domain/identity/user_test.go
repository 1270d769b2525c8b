package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Jane.Doe@Example.COM", "hashed-password", "Jane", "Doe")
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, "Jane Doe", user.FullName())
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVendor)
	assert.Equal(t, user.ID, user.Profile.UserID)
	assert.Len(t, user.GetDomainEvents(), 1)
	assert.Equal(t, EventTypeUserRegistered, user.GetDomainEvents()[0].EventType())
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "hash", "Jane", "Doe")
	assert.Error(t, err)

	_, err = NewUser("not-an-email", "hash", "Jane", "Doe")
	assert.Error(t, err)

	_, err = NewUser("jane@example.com", "", "Jane", "Doe")
	assert.Error(t, err)
}

func TestUserMarkAsVendor(t *testing.T) {
	user, _ := NewUser("vendor@example.com", "hash", "V", "Endor")
	assert.False(t, user.IsVendor)

	user.MarkAsVendor()
	assert.True(t, user.IsVendor)

	user.RevokeVendor()
	assert.False(t, user.IsVendor)
}

func TestUserChangePassword(t *testing.T) {
	user, _ := NewUser("jane@example.com", "old-hash", "Jane", "Doe")

	require.NoError(t, user.ChangePassword("new-hash"))
	assert.Equal(t, "new-hash", user.PasswordHash)

	assert.Error(t, user.ChangePassword(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.COM "))
}
