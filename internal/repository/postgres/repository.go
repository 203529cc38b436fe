package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    "isCompleted" BOOLEAN NOT NULL DEFAULT FALSE
);
`

// PostgresRepository implements the repository.Repository interface
// on top of a Postgres database via the pgx stdlib driver.
type PostgresRepository struct {
	db *sql.DB
}

// New opens a Postgres connection for the given DSN, verifies it and
// ensures the schema exists.
func New(dsn string) (*PostgresRepository, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("ping database", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("ensure schema", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task and assigns its ID
func (r *PostgresRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	const q = `INSERT INTO tasks (name, "isCompleted") VALUES ($1, $2) RETURNING id`

	if err := r.db.QueryRowContext(ctx, q, task.Name, task.IsCompleted).Scan(&task.ID); err != nil {
		return errors.NewDatabaseError("insert task", err)
	}
	return nil
}

// GetTask retrieves a task by ID, returning (nil, nil) when no row matches
func (r *PostgresRepository) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	const q = `SELECT id, name, "isCompleted" FROM tasks WHERE id = $1`

	task := &domain.Task{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&task.ID, &task.Name, &task.IsCompleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.NewDatabaseError("scan task", err)
	}
	return task, nil
}

// ListTasks retrieves all tasks in insertion order
func (r *PostgresRepository) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	const q = `SELECT id, name, "isCompleted" FROM tasks ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.NewDatabaseError("query tasks", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task := &domain.Task{}
		if err := rows.Scan(&task.ID, &task.Name, &task.IsCompleted); err != nil {
			return nil, errors.NewDatabaseError("scan tasks", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError("scan tasks", err)
	}
	return tasks, nil
}

// UpdateTask persists a full overwrite of the given task
func (r *PostgresRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	const q = `UPDATE tasks SET name = $1, "isCompleted" = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, q, task.Name, task.IsCompleted, task.ID)
	if err != nil {
		return errors.NewDatabaseError("update task", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", task.ID))
	}
	return nil
}

// DeleteTask deletes a task by ID and reports how many rows were affected
func (r *PostgresRepository) DeleteTask(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM tasks WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, errors.NewDatabaseError("delete task", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, errors.NewDatabaseError("get rows affected", err)
	}
	return rows, nil
}

// Ping verifies database connectivity, used by the health endpoint.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()
	return r.db.PingContext(ctx)
}
