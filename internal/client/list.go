package client

import (
	"strings"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// LocalList is the client-side task list: an owned, unsynchronized copy of
// the server state as of the last fetch, plus any locally-applied changes.
// Every mutation builds a new slice, so snapshots returned earlier are never
// aliased by later changes. Not safe for concurrent use; the UI drives it
// from a single loop.
type LocalList struct {
	tasks []domain.Task
}

// NewLocalList creates an empty list.
func NewLocalList() *LocalList {
	return &LocalList{}
}

// Tasks returns the current snapshot, append order preserved.
func (l *LocalList) Tasks() []domain.Task {
	out := make([]domain.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *LocalList) Len() int { return len(l.tasks) }

// Replace swaps in a fresh list, normally the server's response to a fetch.
func (l *LocalList) Replace(tasks []domain.Task) {
	next := make([]domain.Task, len(tasks))
	copy(next, tasks)
	l.tasks = next
}

// Add appends a new uncompleted task with a transient id and returns that id.
// Empty or whitespace-only text is a no-op, reported by ok=false.
func (l *LocalList) Add(text string) (id string, ok bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	id = uuid.NewString()
	next := make([]domain.Task, len(l.tasks), len(l.tasks)+1)
	copy(next, l.tasks)
	l.tasks = append(next, domain.Task{ID: id, Text: trimmed})
	return id, true
}

// Toggle flips completed on the task with the given id, leaving every other
// task unchanged. Returns false when no task matches.
func (l *LocalList) Toggle(id string) bool {
	found := false
	next := make([]domain.Task, len(l.tasks))
	for i, t := range l.tasks {
		if t.ID == id {
			t.Completed = !t.Completed
			found = true
		}
		next[i] = t
	}
	if !found {
		return false
	}
	l.tasks = next
	return true
}

// Delete removes the task with the given id. Returns false when no task
// matches.
func (l *LocalList) Delete(id string) bool {
	next := make([]domain.Task, 0, len(l.tasks))
	found := false
	for _, t := range l.tasks {
		if t.ID == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return false
	}
	l.tasks = next
	return true
}

// Reconcile replaces the task carrying a transient id with the server's
// stored record, keeping its position. Returns false when no task matches.
func (l *LocalList) Reconcile(transientID string, stored domain.Task) bool {
	found := false
	next := make([]domain.Task, len(l.tasks))
	for i, t := range l.tasks {
		if t.ID == transientID {
			t = stored
			found = true
		}
		next[i] = t
	}
	if !found {
		return false
	}
	l.tasks = next
	return true
}

// Find returns the task with the given id, or nil.
func (l *LocalList) Find(id string) *domain.Task {
	for _, t := range l.tasks {
		if t.ID == id {
			task := t
			return &task
		}
	}
	return nil
}
