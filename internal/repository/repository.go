package repository

import (
	"context"

	"task-tracker/internal/domain"
)

// Repository defines the interface for task persistence operations.
// Both the sqlite and postgres stores implement it.
type Repository interface {
	// CreateTask persists a new task and assigns its ID.
	CreateTask(ctx context.Context, task *domain.Task) error

	// GetTask retrieves a task by ID. A missing row is not an error:
	// it returns (nil, nil).
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks retrieves all tasks in insertion order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// UpdateTask persists a full overwrite of the given task.
	UpdateTask(ctx context.Context, task *domain.Task) error

	// DeleteTask removes the row with the given ID and reports how many
	// rows were affected. Deleting a missing ID is not an error.
	DeleteTask(ctx context.Context, id int64) (int64, error)

	// Close releases the underlying database handle.
	Close() error
}
