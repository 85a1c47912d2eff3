package model

import "time"

// Client is the single business profile owned by an authenticated user.
// UserID comes from the external identity provider; the unique index enforces
// one client per user even under concurrent onboarding.
type Client struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       string       `gorm:"uniqueIndex" json:"user_id"`
	BusinessType BusinessType `gorm:"index" json:"business_type"`
	BusinessName string       `json:"business_name"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Tasks        []ClientTask `gorm:"foreignKey:ClientID" json:"-"`
}
