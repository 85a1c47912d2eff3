package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"promo-planner/internal/model"
)

// ClientRepository handles persistence for client profiles.
type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// FindByUserID returns the client owned by userID, or nil when the user has
// not onboarded yet. Absence is not an error.
func (r *ClientRepository) FindByUserID(ctx context.Context, userID string) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&client).Error
	switch {
	case err == nil:
		return &client, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find client: %w", err)
	}
}

// CreateWithTasks inserts the client and its initial task set as one atomic
// transaction. buildTasks runs after the client row exists so the task rows
// can reference its id; a failure anywhere rolls back the client row too.
func (r *ClientRepository) CreateWithTasks(ctx context.Context, client *model.Client, buildTasks func(clientID uint) []model.ClientTask) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(client).Error; err != nil {
			return fmt.Errorf("create client: %w", err)
		}
		tasks := buildTasks(client.ID)
		if len(tasks) == 0 {
			return nil
		}
		if err := tx.Create(&tasks).Error; err != nil {
			return fmt.Errorf("create client tasks: %w", err)
		}
		return nil
	})
}
