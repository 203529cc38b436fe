package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// fakeRepository is an in-memory repository.Repository for service tests
type fakeRepository struct {
	tasks  map[int64]*domain.Task
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

func (f *fakeRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	task.ID = f.nextID
	f.nextID++
	stored := *task
	f.tasks[task.ID] = &stored
	return nil
}

func (f *fakeRepository) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (f *fakeRepository) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for id := int64(1); id < f.nextID; id++ {
		if task, ok := f.tasks[id]; ok {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}
	return tasks, nil
}

func (f *fakeRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return errors.NewNotFoundError("task", "unknown")
	}
	stored := *task
	f.tasks[task.ID] = &stored
	return nil
}

func (f *fakeRepository) DeleteTask(ctx context.Context, id int64) (int64, error) {
	if _, ok := f.tasks[id]; !ok {
		return 0, nil
	}
	delete(f.tasks, id)
	return 1, nil
}

func (f *fakeRepository) Close() error {
	return nil
}

func setupService() (TaskService, *fakeRepository) {
	repo := newFakeRepository()
	return NewTaskService(repo), repo
}

func TestCreateForwardsPayload(t *testing.T) {
	svc, _ := setupService()

	task, err := svc.Create(context.Background(), CreateTaskInput{Name: "work out"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "work out", task.Name)
	assert.False(t, task.IsCompleted)
}

func TestCreateRoundTrip(t *testing.T) {
	svc, _ := setupService()

	created, err := svc.Create(context.Background(), CreateTaskInput{Name: "work out"})
	require.NoError(t, err)

	found, err := svc.FindOne(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestFindAllNeverNil(t *testing.T) {
	svc, _ := setupService()

	tasks, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestFindOneMissing(t *testing.T) {
	svc, _ := setupService()

	// Absence surfaces as an explicit not-found error, never a fault
	_, err := svc.FindOne(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestFindOneNonNumericID(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.FindOne(context.Background(), "abc")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestUpdateOverwritesBothFields(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Create(context.Background(), CreateTaskInput{Name: "work out"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "1", UpdateTaskInput{
		Name:        "exercise",
		IsCompleted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "exercise", updated.Name)
	assert.True(t, updated.IsCompleted)

	// The overwrite is persisted, not just echoed
	found, err := svc.FindOne(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestUpdateResetsCompletion(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Create(context.Background(), CreateTaskInput{Name: "work out", IsCompleted: true})
	require.NoError(t, err)

	// Both fields are always replaced, even back to false
	updated, err := svc.Update(context.Background(), "1", UpdateTaskInput{
		Name:        "work out",
		IsCompleted: false,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsCompleted)
}

func TestUpdateMissing(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Update(context.Background(), "42", UpdateTaskInput{
		Name:        "exercise",
		IsCompleted: true,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDeleteExisting(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Create(context.Background(), CreateTaskInput{Name: "work out"})
	require.NoError(t, err)

	result, err := svc.Delete(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Affected)
	assert.Equal(t, []any{}, result.Raw)

	_, err = svc.FindOne(context.Background(), "1")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDeleteMissing(t *testing.T) {
	svc, _ := setupService()

	result, err := svc.Delete(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Affected)
}

func TestDeleteNonNumericID(t *testing.T) {
	svc, _ := setupService()

	result, err := svc.Delete(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Affected)
}

func TestFindAllReflectsLiveRows(t *testing.T) {
	svc, _ := setupService()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(context.Background(), CreateTaskInput{Name: name})
		require.NoError(t, err)
	}

	_, err := svc.Delete(context.Background(), "2")
	require.NoError(t, err)

	tasks, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	names := []string{tasks[0].Name, tasks[1].Name}
	assert.ElementsMatch(t, []string{"a", "c"}, names)
}
