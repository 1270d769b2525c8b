package models

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/identity"
	"github.com/google/uuid"
)

// UserModel is the persistence model for the User aggregate
type UserModel struct {
	AggregateModel
	Email        string           `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash string           `gorm:"type:varchar(100);not null"`
	FirstName    string           `gorm:"type:varchar(100);not null"`
	LastName     string           `gorm:"type:varchar(100);not null"`
	IsVendor     bool             `gorm:"not null;default:false"`
	IsStaff      bool             `gorm:"not null;default:false"`
	IsActive     bool             `gorm:"not null;default:true"`
	Profile      UserProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// UserProfileModel is the persistence model for the user's profile
type UserProfileModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Phone       string     `gorm:"type:varchar(30)"`
	DateOfBirth *time.Time `gorm:""`
	AvatarURL   string     `gorm:"type:varchar(500)"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// ToDomain converts the persistence model to a domain User aggregate
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.toAggregateRoot(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		IsVendor:          m.IsVendor,
		IsStaff:           m.IsStaff,
		IsActive:          m.IsActive,
		Profile: identity.Profile{
			ID:          m.Profile.ID,
			UserID:      m.Profile.UserID,
			Phone:       m.Profile.Phone,
			DateOfBirth: m.Profile.DateOfBirth,
			AvatarURL:   m.Profile.AvatarURL,
			CreatedAt:   m.Profile.CreatedAt,
			UpdatedAt:   m.Profile.UpdatedAt,
		},
	}
}

// FromDomain populates the persistence model from a domain User aggregate
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.IsVendor = u.IsVendor
	m.IsStaff = u.IsStaff
	m.IsActive = u.IsActive
	m.Profile = UserProfileModel{
		ID:          u.Profile.ID,
		UserID:      u.Profile.UserID,
		Phone:       u.Profile.Phone,
		DateOfBirth: u.Profile.DateOfBirth,
		AvatarURL:   u.Profile.AvatarURL,
		CreatedAt:   u.Profile.CreatedAt,
		UpdatedAt:   u.Profile.UpdatedAt,
	}
}

// UserModelFromDomain creates a new persistence model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// AddressModel is the persistence model for the Address aggregate
type AddressModel struct {
	AggregateModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(20);not null"`
	Street    string    `gorm:"type:varchar(200);not null"`
	Apartment string    `gorm:"type:varchar(100)"`
	City      string    `gorm:"type:varchar(100);not null"`
	State     string    `gorm:"type:varchar(100);not null"`
	Zip       string    `gorm:"type:varchar(20);not null"`
	Country   string    `gorm:"type:varchar(100);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address aggregate
func (m *AddressModel) ToDomain() *identity.Address {
	return &identity.Address{
		BaseAggregateRoot: m.toAggregateRoot(),
		UserID:            m.UserID,
		Type:              identity.AddressType(m.Type),
		Street:            m.Street,
		Apartment:         m.Apartment,
		City:              m.City,
		State:             m.State,
		Zip:               m.Zip,
		Country:           m.Country,
		IsDefault:         m.IsDefault,
	}
}

// FromDomain populates the persistence model from a domain Address aggregate
func (m *AddressModel) FromDomain(a *identity.Address) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.UserID = a.UserID
	m.Type = string(a.Type)
	m.Street = a.Street
	m.Apartment = a.Apartment
	m.City = a.City
	m.State = a.State
	m.Zip = a.Zip
	m.Country = a.Country
	m.IsDefault = a.IsDefault
}

// AddressModelFromDomain creates a new persistence model from a domain Address
func AddressModelFromDomain(a *identity.Address) *AddressModel {
	m := &AddressModel{}
	m.FromDomain(a)
	return m
}
