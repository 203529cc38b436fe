package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements the repository.Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// An in-memory database exists per connection; keep the pool at one
	// so every query sees the same schema.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task and assigns its ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO tasks (name, "isCompleted") VALUES (?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Name, task.IsCompleted)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID, returning (nil, nil) when no row matches
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT id, name, "isCompleted" FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", id)
}

// ListTasks retrieves all tasks in insertion order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT id, name, "isCompleted" FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask persists a full overwrite of the given task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	query := `UPDATE tasks SET name = ?, "isCompleted" = ? WHERE id = ?`

	rows, err := ExecuteWithAffectedCount(ctx, r.db, query, task.Name, task.IsCompleted, task.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", task.ID))
	}
	return nil
}

// DeleteTask deletes a task by ID and reports how many rows were affected
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithAffectedCount(ctx, r.db, query, id)
}
