package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name             string `gorm:"size:200;not null" json:"name"`
	Slug             string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description      string `gorm:"type:text" json:"description"`
	ShortDescription string `gorm:"size:300" json:"short_description"`
	Category         string `gorm:"size:50" json:"category"`

	BasePrice         float64 `json:"base_price"`
	EstimatedDuration string  `gorm:"size:100" json:"estimated_duration"`

	Status        string `gorm:"size:20;default:'active'" json:"status"`
	Featured      bool   `gorm:"default:false" json:"featured"`
	DisplayOrder  int    `gorm:"default:0" json:"display_order"`
	Icon          string `gorm:"size:50" json:"icon"`
	BookingsCount int    `gorm:"default:0" json:"bookings_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
