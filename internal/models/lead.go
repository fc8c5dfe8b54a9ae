package models

import "time"

type Lead struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:50" json:"first_name"`
	LastName  string `gorm:"size:50" json:"last_name"`
	Name      string `gorm:"size:100" json:"name"`
	Email     string `gorm:"size:100;index;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Company   string `gorm:"size:100" json:"company"`

	ProjectType string   `gorm:"size:100" json:"project_type"`
	Budget      *float64 `json:"budget"`
	Timeline    string   `gorm:"size:100" json:"timeline"`
	Description string   `gorm:"type:text" json:"description"`

	Source   string `gorm:"size:20;default:'website'" json:"source"`
	Status   string `gorm:"size:20;default:'new'" json:"status"`
	Priority string `gorm:"size:10;default:'medium'" json:"priority"`

	ReferrerURL string `gorm:"size:500" json:"referrer_url"`
	LandingPage string `gorm:"size:500" json:"landing_page"`
	UTMSource   string `gorm:"size:100;column:utm_source" json:"utm_source"`
	UTMMedium   string `gorm:"size:100;column:utm_medium" json:"utm_medium"`
	UTMCampaign string `gorm:"size:100;column:utm_campaign" json:"utm_campaign"`

	Notes string `gorm:"type:text" json:"notes"`

	// Stamped once, on the first transition into the matching status.
	FirstContactedAt *time.Time `json:"first_contacted_at"`
	QualifiedAt      *time.Time `json:"qualified_at"`
	ConvertedAt      *time.Time `json:"converted_at"`

	LastContactDate  *time.Time `json:"last_contact_date"`
	NextFollowupDate *time.Time `json:"next_followup_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
