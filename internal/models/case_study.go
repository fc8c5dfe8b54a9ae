package models

import "time"

type CaseStudy struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string `gorm:"size:200;not null" json:"title"`
	Slug    string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Excerpt string `gorm:"size:500" json:"excerpt"`

	Client   string `gorm:"size:100" json:"client"`
	Location string `gorm:"size:200" json:"location"`
	Category string `gorm:"size:30" json:"category"`
	Duration string `gorm:"size:100" json:"duration"`

	Challenge string `gorm:"type:text" json:"challenge"`
	Solution  string `gorm:"type:text" json:"solution"`
	Results   string `gorm:"type:text" json:"results"`

	FeaturedImage string `gorm:"size:500" json:"featured_image"`

	Status      string     `gorm:"size:20;default:'draft'" json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
	Views       int        `gorm:"default:0" json:"views"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
