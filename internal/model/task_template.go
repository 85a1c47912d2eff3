package model

import "time"

// TaskTemplate is a reusable monthly promo task definition. Rows are seed data
// and read-only from the services' perspective. Only DueDate's day-of-month is
// meaningful; year and month are placeholders replaced at instantiation.
type TaskTemplate struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Title        string       `json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	BusinessType BusinessType `gorm:"index" json:"business_type"`
	DueDate      time.Time    `json:"due_date"`
	IsTemplate   bool         `gorm:"default:true" json:"is_template"`
}
