package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"promo-planner/internal/model"
)

// TaskRow is a client task joined with its template's descriptive fields,
// shaped for the dashboard listing.
type TaskRow struct {
	ID           uint               `json:"id"`
	Status       model.TaskStatus   `json:"status"`
	CompletedAt  *time.Time         `json:"completed_at"`
	DueDate      time.Time          `json:"due_date"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	BusinessType model.BusinessType `json:"business_type"`
}

// ClientTaskRepository handles persistence for task instances.
type ClientTaskRepository struct {
	db *gorm.DB
}

func NewClientTaskRepository(db *gorm.DB) *ClientTaskRepository {
	return &ClientTaskRepository{db: db}
}

// ListForClient returns the client's tasks with template details, due date
// ascending with creation time as the stable tie-break for same-day tasks.
func (r *ClientTaskRepository) ListForClient(ctx context.Context, clientID uint) ([]TaskRow, error) {
	var rows []TaskRow
	if err := r.db.WithContext(ctx).
		Model(&model.ClientTask{}).
		Select("client_tasks.id, client_tasks.status, client_tasks.completed_at, client_tasks.due_date, client_tasks.created_at, client_tasks.updated_at, task_templates.title, task_templates.description, task_templates.business_type").
		Joins("JOIN task_templates ON task_templates.id = client_tasks.task_id").
		Where("client_tasks.client_id = ?", clientID).
		Order("client_tasks.due_date ASC, client_tasks.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list client tasks: %w", err)
	}
	return rows, nil
}

// FindOwned returns the task only when it belongs to a client owned by
// userID. A task owned by someone else is indistinguishable from a missing
// one: both surface gorm.ErrRecordNotFound.
func (r *ClientTaskRepository) FindOwned(ctx context.Context, userID string, taskID uint) (*model.ClientTask, error) {
	var task model.ClientTask
	if err := r.db.WithContext(ctx).
		Select("client_tasks.*").
		Joins("JOIN clients ON clients.id = client_tasks.client_id").
		Where("client_tasks.id = ? AND clients.user_id = ?", taskID, userID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// SetStatus applies the new status and completion stamp. Save also refreshes
// updated_at.
func (r *ClientTaskRepository) SetStatus(ctx context.Context, task *model.ClientTask, status model.TaskStatus, completedAt *time.Time) error {
	task.Status = status
	task.CompletedAt = completedAt
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return nil
}
