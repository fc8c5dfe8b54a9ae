package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LeadID uint `json:"lead_id"`
	Lead   Lead `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"lead"`

	SlotID uint             `json:"slot_id"`
	Slot   ConsultationSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"slot"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Paid         bool     `gorm:"default:false" json:"paid"`
	AmountPaid   float64  `json:"amount_paid"`
	ProjectValue *float64 `json:"project_value"`

	MeetingLink  string `gorm:"size:255" json:"meeting_link"`
	Notes        string `gorm:"type:text" json:"notes"`
	ReminderSent bool   `gorm:"default:false" json:"reminder_sent"`

	CancelledAt        *time.Time `json:"cancelled_at"`
	CancellationReason string     `gorm:"type:text" json:"cancellation_reason"`
	CompletedAt        *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
