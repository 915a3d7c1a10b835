// Package store defines the persistence contract for tasks.
// Backends (mongo, sqlite, memory) live in subpackages and are selected by
// configuration; the rest of the system only sees this interface.
package store

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Store is the task persistence interface.
//
// Identifier encoding is backend-native (ObjectID hex for mongo, UUID for
// sqlite and memory). Update and Delete validate the id before touching the
// backend and return domain.ErrInvalidID on malformed input, distinct from
// domain.ErrTaskNotFound for a well-formed id with no record.
type Store interface {
	// List returns every task in the store's natural iteration order.
	List(ctx context.Context) ([]domain.Task, error)

	// Create inserts a new task with the given text, completed=false and
	// createdAt=now, and returns it as stored (id assigned by the backend).
	Create(ctx context.Context, text string) (*domain.Task, error)

	// Update merges the supplied patch fields into the task and refreshes
	// updatedAt. Unsupplied fields are untouched.
	Update(ctx context.Context, id string, patch domain.Patch) (*domain.Task, error)

	// Delete removes exactly one task. Hard delete, no recovery.
	Delete(ctx context.Context, id string) error

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	// Close releases the backend connection.
	Close(ctx context.Context) error
}
