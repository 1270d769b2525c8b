package identity

import (
	"context"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/identity"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles account profile operations
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the account with its profile details
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	return &ProfileResult{
		UserInfo:    toUserInfo(user),
		Phone:       user.Profile.Phone,
		DateOfBirth: user.Profile.DateOfBirth,
		AvatarURL:   user.Profile.AvatarURL,
		CreatedAt:   user.CreatedAt,
	}, nil
}

// UpdateProfile updates the account name and profile details
func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*ProfileResult, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	user.UpdateName(input.FirstName, input.LastName)
	user.UpdateProfile(input.Phone, input.DateOfBirth, input.AvatarURL)

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save profile update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	s.logger.Info("Profile updated", zap.String("user_id", user.ID.String()))

	return &ProfileResult{
		UserInfo:    toUserInfo(user),
		Phone:       user.Profile.Phone,
		DateOfBirth: user.Profile.DateOfBirth,
		AvatarURL:   user.Profile.AvatarURL,
		CreatedAt:   user.CreatedAt,
	}, nil
}

// DeactivateAccount disables the account. Existing orders are kept.
func (s *UserService) DeactivateAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	user.Deactivate()

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to deactivate account", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to deactivate account")
	}

	s.logger.Info("Account deactivated", zap.String("user_id", userID.String()))

	return nil
}
