// Package memory implements the task store in process memory.
// Used by tests and by `taskdeck serve --store memory`; nothing survives a
// restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Store is a mutex-guarded in-memory task store. Ids are UUIDs.
type Store struct {
	mu    sync.RWMutex
	tasks []domain.Task

	// Error injection for tests. When set, every matching call fails.
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// List returns tasks in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Task, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// Create appends a new task with a generated UUID.
func (s *Store) Create(ctx context.Context, text string) (*domain.Task, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.Task{
		ID:        uuid.NewString(),
		Text:      text,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	s.tasks = append(s.tasks, task)
	return &task, nil
}

// Update merges the patch into the matching task and stamps updatedAt.
func (s *Store) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Task, error) {
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if patch.Text != nil {
			s.tasks[i].Text = *patch.Text
		}
		if patch.Completed != nil {
			s.tasks[i].Completed = *patch.Completed
		}
		now := time.Now().UTC()
		s.tasks[i].UpdatedAt = &now

		task := s.tasks[i]
		return &task, nil
	}
	return nil, domain.ErrTaskNotFound
}

// Delete removes the matching task.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	if err := validateID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close(ctx context.Context) error { return nil }

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}
