package models

import "time"

type MediaFile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FileName    string `gorm:"size:255;not null" json:"file_name"`
	ObjectKey   string `gorm:"size:500;uniqueIndex;not null" json:"object_key"`
	ContentType string `gorm:"size:100" json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	URL         string `gorm:"size:500" json:"url"`

	UploadedBy *uint `json:"uploaded_by"`

	CreatedAt time.Time `json:"created_at"`
}
