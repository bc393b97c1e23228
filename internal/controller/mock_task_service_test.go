package controller

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/services"

	"github.com/stretchr/testify/mock"
)

// mockTaskService is a testify mock of services.TaskService
type mockTaskService struct {
	mock.Mock
}

var _ services.TaskService = (*mockTaskService)(nil)

func (m *mockTaskService) Add(ctx context.Context, name, category, priority, dueAt, description string) (*domain.Task, error) {
	args := m.Called(ctx, name, category, priority, dueAt, description)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *mockTaskService) Restore(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *mockTaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *mockTaskService) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

func (m *mockTaskService) Delete(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *mockTaskService) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTaskService) SortByDueDate(ctx context.Context, order services.SortOrder) error {
	return m.Called(ctx, order).Error(0)
}
