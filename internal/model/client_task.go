package model

import "time"

// TaskStatus is the completion state of a client task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Valid reports whether s is a recognised status.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// ClientTask is one concrete occurrence of a template task for a client.
// DueDate is fixed at creation time and never recomputed. CompletedAt is
// non-nil exactly when Status is completed.
type ClientTask struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ClientID    uint       `gorm:"index" json:"client_id"`
	TaskID      uint       `gorm:"index" json:"task_id"`
	Status      TaskStatus `gorm:"default:pending" json:"status"`
	DueDate     time.Time  `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
