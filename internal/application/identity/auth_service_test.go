package identity

import (
	"context"
	"testing"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/identity"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/auth"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestAuthService(userRepo *MockUserRepository) (*AuthService, *auth.PasswordHasher) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-32ch",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "buyhive-test",
		MaxRefreshCount:        3,
	})
	hasher := auth.NewPasswordHasher()
	blacklist := auth.NewInMemoryTokenBlacklist()
	bus := &stubEventBus{}
	return NewAuthService(userRepo, jwtService, hasher, blacklist, bus, zap.NewNop()), hasher
}

type stubEventBus struct {
	published []shared.DomainEvent
}

func (b *stubEventBus) Publish(_ context.Context, events ...shared.DomainEvent) error {
	b.published = append(b.published, events...)
	return nil
}

func newActiveUser(t *testing.T, hasher *auth.PasswordHasher, email, password string) *identity.User {
	t.Helper()
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	user, err := identity.NewUser(email, hash, "Asha", "Rao")
	require.NoError(t, err)
	user.ClearDomainEvents()
	return user
}

func TestAuthService_Register(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, _ := newTestAuthService(userRepo)

	userRepo.On("ExistsByEmail", mock.Anything, "asha@example.com").Return(false, nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:     "Asha@Example.com",
		Password:  "secret-password",
		FirstName: "Asha",
		LastName:  "Rao",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "asha@example.com", result.User.Email)
	assert.False(t, result.User.IsVendor)

	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, _ := newTestAuthService(userRepo)

	userRepo.On("ExistsByEmail", mock.Anything, "asha@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:     "asha@example.com",
		Password:  "secret-password",
		FirstName: "Asha",
		LastName:  "Rao",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, hasher := newTestAuthService(userRepo)
	user := newActiveUser(t, hasher, "asha@example.com", "secret-password")

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "ASHA@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, hasher := newTestAuthService(userRepo)
	user := newActiveUser(t, hasher, "asha@example.com", "secret-password")

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, hasher := newTestAuthService(userRepo)
	user := newActiveUser(t, hasher, "asha@example.com", "secret-password")
	user.Deactivate()

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "asha@example.com",
		Password: "secret-password",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
}

func TestAuthService_RefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, hasher := newTestAuthService(userRepo)
	user := newActiveUser(t, hasher, "asha@example.com", "secret-password")

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	login, err := svc.Login(context.Background(), LoginInput{
		Email:    "asha@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	// Vendor flag granted between login and refresh shows up in the new token
	user.MarkAsVendor()

	refreshed, err := svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.True(t, refreshed.User.IsVendor)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, _ := newTestAuthService(userRepo)

	_, err := svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "garbage"})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_Logout(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, _ := newTestAuthService(userRepo)

	err := svc.Logout(context.Background(), LogoutInput{
		UserID:    uuid.New(),
		AccessJTI: "jti-123",
		AccessTTL: 10 * time.Minute,
	})
	require.NoError(t, err)
}

func TestAuthService_ChangePassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, hasher := newTestAuthService(userRepo)
	user := newActiveUser(t, hasher, "asha@example.com", "old-password-1")

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	err := svc.ChangePassword(context.Background(), ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "old-password-1",
		NewPassword: "new-password-1",
	})
	require.NoError(t, err)
	assert.True(t, hasher.Verify(user.PasswordHash, "new-password-1"))
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, hasher := newTestAuthService(userRepo)
	user := newActiveUser(t, hasher, "asha@example.com", "old-password-1")

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	err := svc.ChangePassword(context.Background(), ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "not-the-password",
		NewPassword: "new-password-1",
	})
	require.Error(t, err)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
