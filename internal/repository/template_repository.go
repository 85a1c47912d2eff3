package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"promo-planner/internal/model"
)

// TaskTemplateRepository reads the canonical task templates. Templates are
// seed data; nothing here mutates them.
type TaskTemplateRepository struct {
	db *gorm.DB
}

func NewTaskTemplateRepository(db *gorm.DB) *TaskTemplateRepository {
	return &TaskTemplateRepository{db: db}
}

// ListByBusinessType returns only canonical templates for the given category.
// The is_template filter keeps instantiated rows out even if the table is ever
// shared with non-template data.
func (r *TaskTemplateRepository) ListByBusinessType(ctx context.Context, businessType model.BusinessType) ([]model.TaskTemplate, error) {
	var templates []model.TaskTemplate
	if err := r.db.WithContext(ctx).
		Where("business_type = ? AND is_template = ?", businessType, true).
		Order("id ASC").
		Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}
