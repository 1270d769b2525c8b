package models

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/vendor"
	"github.com/google/uuid"
)

// VendorProfileModel is the persistence model for the vendor Profile
// aggregate
type VendorProfileModel struct {
	AggregateModel
	UserID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName    string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description     string     `gorm:"type:text"`
	LogoURL         string     `gorm:"type:varchar(500)"`
	BannerURL       string     `gorm:"type:varchar(500)"`
	ContactEmail    string     `gorm:"type:varchar(254)"`
	ContactPhone    string     `gorm:"type:varchar(30)"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason string     `gorm:"type:text"`
	ApprovedAt      *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}

// ToDomain converts the persistence model to a domain vendor Profile
func (m *VendorProfileModel) ToDomain() *vendor.Profile {
	return &vendor.Profile{
		BaseAggregateRoot: m.toAggregateRoot(),
		UserID:            m.UserID,
		BusinessName:      m.BusinessName,
		Description:       m.Description,
		LogoURL:           m.LogoURL,
		BannerURL:         m.BannerURL,
		ContactEmail:      m.ContactEmail,
		ContactPhone:      m.ContactPhone,
		Status:            vendor.Status(m.Status),
		RejectionReason:   m.RejectionReason,
		ApprovedAt:        m.ApprovedAt,
	}
}

// FromDomain populates the persistence model from a domain vendor Profile
func (m *VendorProfileModel) FromDomain(p *vendor.Profile) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.UserID = p.UserID
	m.BusinessName = p.BusinessName
	m.Description = p.Description
	m.LogoURL = p.LogoURL
	m.BannerURL = p.BannerURL
	m.ContactEmail = p.ContactEmail
	m.ContactPhone = p.ContactPhone
	m.Status = string(p.Status)
	m.RejectionReason = p.RejectionReason
	m.ApprovedAt = p.ApprovedAt
}

// VendorProfileModelFromDomain creates a new persistence model from a
// domain vendor Profile
func VendorProfileModelFromDomain(p *vendor.Profile) *VendorProfileModel {
	m := &VendorProfileModel{}
	m.FromDomain(p)
	return m
}
