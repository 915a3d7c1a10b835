package client

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Session binds a LocalList to the API: every local action is applied
// optimistically, sent to the server, and reverted if the call fails. On
// success the local entry is reconciled with the record the server returned.
type Session struct {
	api  *Client
	list *LocalList
}

// NewSession creates a session over the given API client.
func NewSession(api *Client) *Session {
	return &Session{api: api, list: NewLocalList()}
}

// Tasks returns the current local snapshot.
func (s *Session) Tasks() []domain.Task {
	return s.list.Tasks()
}

// Refresh replaces the local list with the server's.
func (s *Session) Refresh(ctx context.Context) error {
	tasks, err := s.api.List(ctx)
	if err != nil {
		return err
	}
	s.list.Replace(tasks)
	return nil
}

// Add creates a task. The entry appears locally at once under a transient id
// and is swapped for the stored record when the server answers.
func (s *Session) Add(ctx context.Context, text string) (*domain.Task, error) {
	transient, ok := s.list.Add(text)
	if !ok {
		return nil, domain.ErrEmptyText
	}

	created, err := s.api.Create(ctx, text)
	if err != nil {
		s.list.Delete(transient)
		return nil, err
	}
	s.list.Reconcile(transient, *created)
	return created, nil
}

// Toggle flips a task's completed state locally and on the server.
func (s *Session) Toggle(ctx context.Context, id string) (*domain.Task, error) {
	task := s.list.Find(id)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	s.list.Toggle(id)

	completed := !task.Completed
	updated, err := s.api.Update(ctx, id, domain.Patch{Completed: &completed})
	if err != nil {
		s.list.Toggle(id)
		return nil, err
	}
	s.list.Reconcile(id, *updated)
	return updated, nil
}

// Remove deletes a task locally and on the server.
func (s *Session) Remove(ctx context.Context, id string) error {
	prev := s.list.Tasks()
	if !s.list.Delete(id) {
		return domain.ErrTaskNotFound
	}

	if err := s.api.Delete(ctx, id); err != nil {
		s.list.Replace(prev)
		return err
	}
	return nil
}
