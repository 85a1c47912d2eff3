package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"promo-planner/internal/model"
	"promo-planner/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := repository.NewDB(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func seedTemplates(t *testing.T, db *gorm.DB, templates []model.TaskTemplate) {
	t.Helper()
	require.NoError(t, db.Create(&templates).Error)
}

func templateDay(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

func newClientService(db *gorm.DB, now time.Time) *ClientService {
	svc := NewClientService(repository.NewClientRepository(db), repository.NewTaskTemplateRepository(db))
	svc.now = func() time.Time { return now }
	return svc
}

func newTaskService(db *gorm.DB, now time.Time) *TaskService {
	svc := NewTaskService(repository.NewClientRepository(db), repository.NewClientTaskRepository(db))
	svc.now = func() time.Time { return now }
	return svc
}
