package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"promo-planner/internal/model"
	"promo-planner/internal/repository"
	"promo-planner/internal/service"
)

// taskJSON is the dashboard row shape. Due dates render date-only; the time
// of day carries no meaning for a monthly checklist item.
type taskJSON struct {
	ID           uint               `json:"id"`
	Status       model.TaskStatus   `json:"status"`
	CompletedAt  *time.Time         `json:"completed_at"`
	DueDate      string             `json:"due_date"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	BusinessType model.BusinessType `json:"business_type"`
}

type updatedTaskJSON struct {
	ID          uint             `json:"id"`
	Status      model.TaskStatus `json:"status"`
	CompletedAt *time.Time       `json:"completed_at"`
	DueDate     string           `json:"due_date"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleListTasks(c *gin.Context) {
	rows, err := s.tasks.ListTasks(c.Request.Context(), currentUserID(c))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"tasks": taskList(rows)})
	case errors.Is(err, service.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.serverError(c, "GET /api/tasks", err)
	}
}

func (s *Server) handleSetTaskStatus(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrTaskNotFound.Error()})
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidStatus.Error()})
		return
	}

	task, err := s.tasks.SetTaskStatus(c.Request.Context(), currentUserID(c), uint(taskID), model.TaskStatus(req.Status))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"task": updatedTaskJSON{
			ID:          task.ID,
			Status:      task.Status,
			CompletedAt: task.CompletedAt,
			DueDate:     task.DueDate.Format(time.DateOnly),
			UpdatedAt:   task.UpdatedAt,
		}})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.serverError(c, "PUT /api/tasks/:id", err)
	}
}

func taskList(rows []repository.TaskRow) []taskJSON {
	out := make([]taskJSON, 0, len(rows))
	for _, row := range rows {
		out = append(out, taskJSON{
			ID:           row.ID,
			Status:       row.Status,
			CompletedAt:  row.CompletedAt,
			DueDate:      row.DueDate.Format(time.DateOnly),
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
			Title:        row.Title,
			Description:  row.Description,
			BusinessType: row.BusinessType,
		})
	}
	return out
}
