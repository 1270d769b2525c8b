package identity

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/identity"
	"github.com/google/uuid"
)

// RegisterInput contains input for account registration
type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// LoginInput contains login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenInput contains a refresh token
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutInput identifies the session(s) to terminate
type LogoutInput struct {
	UserID      uuid.UUID
	AccessJTI   string
	AccessTTL   time.Duration
	AllSessions bool
}

// UserInfo is the account representation returned to clients
type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	IsVendor  bool      `json:"is_vendor"`
	IsStaff   bool      `json:"is_staff"`
}

// AuthResult is returned from Register, Login and RefreshToken
type AuthResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// ChangePasswordInput contains input for a password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UpdateProfileInput contains editable account and profile fields
type UpdateProfileInput struct {
	UserID      uuid.UUID
	FirstName   string     `json:"first_name" binding:"required"`
	LastName    string     `json:"last_name" binding:"required"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	AvatarURL   string     `json:"avatar_url"`
}

// ProfileResult is the full account view including profile details
type ProfileResult struct {
	UserInfo
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	AvatarURL   string     `json:"avatar_url"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateAddressInput contains input for adding an address
type CreateAddressInput struct {
	UserID    uuid.UUID
	Type      string `json:"type" binding:"required,oneof=billing shipping"`
	Street    string `json:"street" binding:"required"`
	Apartment string `json:"apartment"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zip       string `json:"zip" binding:"required"`
	Country   string `json:"country" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// UpdateAddressInput contains input for editing an address
type UpdateAddressInput struct {
	UserID    uuid.UUID
	AddressID uuid.UUID
	Type      string `json:"type" binding:"required,oneof=billing shipping"`
	Street    string `json:"street" binding:"required"`
	Apartment string `json:"apartment"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zip       string `json:"zip" binding:"required"`
	Country   string `json:"country" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// AddressResult is the address representation returned to clients
type AddressResult struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Street    string    `json:"street"`
	Apartment string    `json:"apartment"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Country   string    `json:"country"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		IsVendor:  user.IsVendor,
		IsStaff:   user.IsStaff,
	}
}

func toAddressResult(a *identity.Address) AddressResult {
	return AddressResult{
		ID:        a.ID,
		Type:      string(a.Type),
		Street:    a.Street,
		Apartment: a.Apartment,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Country:   a.Country,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}
