package models

import "time"

type NewsletterSubscriber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email  string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Active bool   `gorm:"default:true" json:"active"`

	SubscribedAt   time.Time  `gorm:"autoCreateTime" json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`
}
