package services

import (
	"context"

	"task-tracker/internal/domain"
)

// CreateTaskInput carries a validated creation payload.
// IsCompleted defaults to false when the request omitted it.
type CreateTaskInput struct {
	Name        string
	IsCompleted bool
}

// UpdateTaskInput carries a validated update payload. Both fields are
// required; an update always overwrites both.
type UpdateTaskInput struct {
	Name        string
	IsCompleted bool
}

// TaskService handles the task CRUD contract between the request layer
// and the store. Identifiers arrive as the raw path strings; the service
// owns their conversion to numeric keys.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	FindAll(ctx context.Context) ([]*domain.Task, error)
	FindOne(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
