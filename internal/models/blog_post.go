package models

import "time"

type BlogPost struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string `gorm:"size:200;not null" json:"title"`
	Slug    string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Content string `gorm:"type:text" json:"content"`
	Excerpt string `gorm:"size:500" json:"excerpt"`

	AuthorID *uint `json:"author_id"`
	Author   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"author,omitempty"`

	FeaturedImage string `gorm:"size:500" json:"featured_image"`

	Status      string     `gorm:"size:20;default:'draft'" json:"status"`
	PublishedAt *time.Time `json:"published_at"`

	SEOTitle       string `gorm:"size:200;column:seo_title" json:"seo_title"`
	SEODescription string `gorm:"size:300;column:seo_description" json:"seo_description"`

	ReadTime int `gorm:"default:5" json:"read_time"`
	Views    int `gorm:"default:0" json:"views"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
