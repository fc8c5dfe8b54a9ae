package models

import "time"

// WebhookEvent stores every verified provider event. The unique event id is
// the idempotency key: a redelivered event fails the insert and is skipped
// before any side effect runs.
type WebhookEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Provider  string `gorm:"size:20;not null;default:'stripe'" json:"provider"`
	EventID   string `gorm:"size:191;uniqueIndex;not null" json:"event_id"`
	EventType string `gorm:"size:100;index" json:"event_type"`
	Payload   string `gorm:"type:text" json:"payload"`

	ProcessedAt     *time.Time `json:"processed_at"`
	ProcessingError string     `gorm:"type:text" json:"processing_error"`

	CreatedAt time.Time `json:"created_at"`
}
