package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"promo-planner/internal/model"
	"promo-planner/internal/repository"
)

// ClientInput is the onboarding payload.
type ClientInput struct {
	BusinessType string
	BusinessName string
}

// ClientService provisions client profiles and their initial monthly task set.
type ClientService struct {
	clientRepo   *repository.ClientRepository
	templateRepo *repository.TaskTemplateRepository
	now          func() time.Time
}

func NewClientService(clientRepo *repository.ClientRepository, templateRepo *repository.TaskTemplateRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo, templateRepo: templateRepo, now: time.Now}
}

// GetClient returns the caller's client profile, or nil when they have not
// onboarded yet. Absence is a normal outcome, not an error.
func (s *ClientService) GetClient(ctx context.Context, userID string) (*model.Client, error) {
	return s.clientRepo.FindByUserID(ctx, userID)
}

// CreateClient onboards the caller: one client row plus one pending task per
// template of the chosen business type, with due dates pinned to the current
// month. The client insert and the task fan-out run as a single transaction,
// so a mid-loop failure leaves no partial onboarding behind.
func (s *ClientService) CreateClient(ctx context.Context, userID string, input ClientInput) (*model.Client, error) {
	businessType := model.BusinessType(strings.TrimSpace(input.BusinessType))
	businessName := strings.TrimSpace(input.BusinessName)

	if businessType == "" || businessName == "" {
		return nil, ErrFieldsRequired
	}
	if !businessType.Valid() {
		return nil, ErrUnknownBusinessType
	}

	existing, err := s.clientRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrClientExists
	}

	templates, err := s.templateRepo.ListByBusinessType(ctx, businessType)
	if err != nil {
		return nil, err
	}

	now := s.now()
	client := model.Client{
		UserID:       userID,
		BusinessType: businessType,
		BusinessName: businessName,
	}

	err = s.clientRepo.CreateWithTasks(ctx, &client, func(clientID uint) []model.ClientTask {
		tasks := make([]model.ClientTask, 0, len(templates))
		for _, tpl := range templates {
			tasks = append(tasks, model.ClientTask{
				ClientID: clientID,
				TaskID:   tpl.ID,
				Status:   model.TaskStatusPending,
				DueDate:  monthDueDate(now, tpl.DueDate.Day()),
			})
		}
		return tasks
	})
	if err != nil {
		// The unique index on user_id backstops the existence check above
		// when two onboarding calls race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrClientExists
		}
		return nil, err
	}

	return &client, nil
}

// monthDueDate pins a template's day-of-month to now's year and month.
// Overflow days normalize forward (Feb 31 becomes early March), matching
// time.Date semantics.
func monthDueDate(now time.Time, day int) time.Time {
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC)
}
