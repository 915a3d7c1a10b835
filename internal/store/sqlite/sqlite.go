// Package sqlite implements the task store on an embedded SQLite database.
// Uses WAL mode for concurrent reads and crash-safe writes. Ids are UUIDs.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Store is a SQLite-backed task store at dir/tasks.db.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database and runs the schema migration.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "tasks.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		text       TEXT NOT NULL,
		completed  BOOLEAN NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER
	)`)
	return err
}

// Close shuts down the database.
func (s *Store) Close(ctx context.Context) error {
	return s.db.Close()
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// List returns all tasks in creation order.
func (s *Store) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, text, completed, created_at, updated_at FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// Create inserts a new task with a generated UUID.
func (s *Store) Create(ctx context.Context, text string) (*domain.Task, error) {
	task := domain.Task{
		ID:        uuid.NewString(),
		Text:      text,
		Completed: false,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, text, completed, created_at) VALUES (?, ?, ?, ?)`,
		task.ID, task.Text, task.Completed, task.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &task, nil
}

// Update merges the patch into the matching row and stamps updated_at.
func (s *Store) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Task, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)

	// Build the SET clause from supplied fields only.
	set := "updated_at = ?"
	args := []any{now.UnixMilli()}
	if patch.Text != nil {
		set += ", text = ?"
		args = append(args, *patch.Text)
	}
	if patch.Completed != nil {
		set += ", completed = ?"
		args = append(args, *patch.Completed)
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET `+set+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrTaskNotFound
	}

	return s.get(ctx, id)
}

// Delete removes the matching row.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (s *Store) get(ctx context.Context, id string) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, text, completed, created_at, updated_at FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	return t, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*domain.Task, error) {
	var t domain.Task
	var createdAt int64
	var updatedAt sql.NullInt64
	if err := s.Scan(&t.ID, &t.Text, &t.Completed, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t.CreatedAt = time.UnixMilli(createdAt).UTC()
	if updatedAt.Valid {
		u := time.UnixMilli(updatedAt.Int64).UTC()
		t.UpdatedAt = &u
	}
	return &t, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}
