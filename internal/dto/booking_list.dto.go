package dto

import "time"

type BookingListDTO struct {
	ID              uint      `json:"id"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	LeadName        string    `json:"lead_name"`
	LeadEmail       string    `json:"lead_email"`
	Paid            bool      `json:"paid"`
	AmountPaid      float64   `json:"amount_paid"`
	MeetingLink     string    `json:"meeting_link"`
}
