// Package domain holds the Task entity and the error taxonomy.
// It is pure — no storage or transport dependency.
package domain

import (
	"strings"
	"time"
)

// Task is the persisted to-do item.
// ID is assigned by the store at creation and is opaque to the rest of the
// system: its encoding is whatever the backing store uses natively.
type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Patch is a partial update to a Task. Nil fields are left untouched.
type Patch struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p Patch) Empty() bool {
	return p.Text == nil && p.Completed == nil
}

// ValidateText checks the user-supplied text of a new task.
// Returns the trimmed text, or ErrEmptyText if nothing remains.
// Enforced at creation only; updates may carry any text.
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	return trimmed, nil
}
