package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"promo-planner/internal/model"
	"promo-planner/internal/repository"
)

// TaskService lists and toggles a client's task instances.
type TaskService struct {
	clientRepo *repository.ClientRepository
	taskRepo   *repository.ClientTaskRepository
	now        func() time.Time
}

func NewTaskService(clientRepo *repository.ClientRepository, taskRepo *repository.ClientTaskRepository) *TaskService {
	return &TaskService{clientRepo: clientRepo, taskRepo: taskRepo, now: time.Now}
}

// ListTasks returns the caller's tasks joined with template details, due date
// first. Read-only.
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]repository.TaskRow, error) {
	client, err := s.clientRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return s.taskRepo.ListForClient(ctx, client.ID)
}

// SetTaskStatus toggles one task owned by the caller. Completing stamps
// completed_at with the current time (repeated completions re-stamp it);
// reverting to pending clears it. A task the caller does not own reads as
// not found, existence is never leaked.
func (s *TaskService) SetTaskStatus(ctx context.Context, userID string, taskID uint, status model.TaskStatus) (*model.ClientTask, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	task, err := s.taskRepo.FindOwned(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	var completedAt *time.Time
	if status == model.TaskStatusCompleted {
		now := s.now()
		completedAt = &now
	}

	if err := s.taskRepo.SetStatus(ctx, task, status, completedAt); err != nil {
		return nil, err
	}
	return task, nil
}
