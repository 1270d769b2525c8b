package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents a registered account. Email is the sole login
// identifier and is always stored lowercased.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	IsVendor     bool
	IsStaff      bool
	IsActive     bool
	Profile      Profile
}

// Profile holds optional account details, created empty at registration
type Profile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Phone       string
	DateOfBirth *time.Time
	AvatarURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUser creates a new user with an empty profile.
// passwordHash must already be hashed by the caller.
func NewUser(email, passwordHash, firstName, lastName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      passwordHash,
		FirstName:         strings.TrimSpace(firstName),
		LastName:          strings.TrimSpace(lastName),
		IsActive:          true,
	}
	now := time.Now()
	user.Profile = Profile{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// FullName returns the display name of the user
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UpdateName updates the user's first and last name
func (u *User) UpdateName(firstName, lastName string) {
	u.FirstName = strings.TrimSpace(firstName)
	u.LastName = strings.TrimSpace(lastName)
	u.UpdatedAt = time.Now()
}

// UpdateProfile updates the nested profile fields
func (u *User) UpdateProfile(phone string, dateOfBirth *time.Time, avatarURL string) {
	u.Profile.Phone = phone
	u.Profile.DateOfBirth = dateOfBirth
	u.Profile.AvatarURL = avatarURL
	now := time.Now()
	u.Profile.UpdatedAt = now
	u.UpdatedAt = now
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

// MarkAsVendor flips the vendor flag, set when a vendor application is approved
func (u *User) MarkAsVendor() {
	u.IsVendor = true
	u.UpdatedAt = time.Now()
}

// RevokeVendor clears the vendor flag, set when a vendor is suspended
func (u *User) RevokeVendor() {
	u.IsVendor = false
	u.UpdatedAt = time.Now()
}

// Deactivate disables the account
func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
}

// NormalizeEmail lowercases and trims an email for lookup purposes
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
