package services

import (
	"context"
	"strconv"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo repository.Repository
}

// NewTaskService creates a new TaskService backed by the given repository
func NewTaskService(repo repository.Repository) TaskService {
	return &taskServiceImpl{
		repo: repo,
	}
}

// parseID converts an externally-supplied string identifier into the
// numeric key. A non-numeric id can never match a row, so callers treat
// the failure the same way as an absent record.
func parseID(id string) (int64, bool) {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return numericID, true
}

// Create persists a new task, forwarding the payload to the store as-is
func (t *taskServiceImpl) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	task := domain.NewTask(input.Name, input.IsCompleted)
	if err := t.repo.CreateTask(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// FindAll returns every persisted task. The result is never nil.
func (t *taskServiceImpl) FindAll(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// FindOne returns the task with the given id, or a not-found error when
// no row matches.
func (t *taskServiceImpl) FindOne(ctx context.Context, id string) (*domain.Task, error) {
	numericID, ok := parseID(id)
	if !ok {
		return nil, errors.NewNotFoundError("task", id)
	}

	task, err := t.repo.GetTask(ctx, numericID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.NewNotFoundError("task", id)
	}
	return task, nil
}

// Update fetches the existing task and overwrites both its name and its
// completion flag with the supplied values, then persists the result.
// Both fields are always replaced regardless of their prior values.
func (t *taskServiceImpl) Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error) {
	task, err := t.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Name = input.Name
	task.IsCompleted = input.IsCompleted

	if err := t.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task with the given id and reports the outcome
// verbatim. A missing or non-numeric id affects zero rows and is not
// an error.
func (t *taskServiceImpl) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	numericID, ok := parseID(id)
	if !ok {
		return domain.NewDeleteResult(0), nil
	}

	affected, err := t.repo.DeleteTask(ctx, numericID)
	if err != nil {
		return nil, err
	}
	return domain.NewDeleteResult(affected), nil
}
