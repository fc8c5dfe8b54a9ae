package models

import "time"

// ConsultationSlot is a fixed-time, fixed-duration bookable opportunity.
// The (start_time, duration_minutes) pair is unique so the batch generator
// can re-run without duplicating inventory.
type ConsultationSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime       time.Time `gorm:"index:ux_slots_start_duration,unique,priority:1;not null" json:"start_time"`
	DurationMinutes int       `gorm:"index:ux_slots_start_duration,unique,priority:2;default:60" json:"duration_minutes"`

	IsAvailable bool    `gorm:"default:true" json:"is_available"`
	Price       float64 `json:"price"`

	CommunicationMethod string  `gorm:"size:50;default:'zoom'" json:"communication_method"`
	RequiresPayment     bool    `gorm:"default:false" json:"requires_payment"`
	PaymentAmount       float64 `json:"payment_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
