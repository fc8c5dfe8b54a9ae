package models

import "time"

// SiteSettings is a single-row record, lazily created on first access.
type SiteSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SiteName    string `gorm:"size:100;default:'Northpeak Consulting'" json:"site_name"`
	Tagline     string `gorm:"size:200" json:"tagline"`
	ContactEmail string `gorm:"size:100" json:"contact_email"`
	ContactPhone string `gorm:"size:20" json:"contact_phone"`
	Address      string `gorm:"size:255" json:"address"`

	LinkedInURL string `gorm:"size:255;column:linkedin_url" json:"linkedin_url"`
	TwitterURL  string `gorm:"size:255" json:"twitter_url"`

	BookingRefundPolicy string `gorm:"type:text" json:"booking_refund_policy"`
	MaintenanceMode     bool   `gorm:"default:false" json:"maintenance_mode"`

	UpdatedAt time.Time `json:"updated_at"`
}
