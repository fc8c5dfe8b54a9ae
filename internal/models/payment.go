package models

import "time"

// Payment is one attempted charge against a booking. A booking may
// accumulate several rows over time (retry after a decline), but only one
// non-terminal payment is allowed at a time.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"booking"`

	Amount   float64 `json:"amount"`
	Currency string  `gorm:"size:3;default:'usd'" json:"currency"`

	IntentID string `gorm:"size:255;uniqueIndex;not null" json:"intent_id"`
	Status   string `gorm:"size:30;default:'pending'" json:"status"`

	PaidAt *time.Time `json:"paid_at"`

	Refunded     bool       `gorm:"default:false" json:"refunded"`
	RefundedAt   *time.Time `json:"refunded_at"`
	RefundAmount float64    `json:"refund_amount"`
	RefundReason string     `gorm:"type:text" json:"refund_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
