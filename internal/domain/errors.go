package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────

var (
	// Client errors (4xx class)
	ErrEmptyText = errors.New("task text must not be empty")
	ErrNoFields  = errors.New("update must supply text or completed")
	ErrInvalidID = errors.New("malformed task id")

	// ErrTaskNotFound: a well-formed id with no matching record.
	ErrTaskNotFound = errors.New("task not found")

	// ErrStoreNotReady: the store connection has not been established yet.
	// Transient; callers may retry later.
	ErrStoreNotReady = errors.New("store not initialized")
)

// IsClientError reports whether err is a request-side validation failure,
// as opposed to NotFound or a store fault.
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptyText) ||
		errors.Is(err, ErrNoFields) ||
		errors.Is(err, ErrInvalidID)
}
