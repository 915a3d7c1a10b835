// Package client provides the Go client for the taskdeck API: a typed HTTP
// client, a local task list with the same semantics as the web page, and a
// Session wiring the two together with optimistic updates.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Client is a typed HTTP client for the four task routes.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the server at baseURL (e.g. http://127.0.0.1:8640).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx response from the server.
// It matches the domain sentinels through errors.Is so callers can test for
// not-found and not-ready without knowing about HTTP.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrTaskNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrStoreNotReady:
		return e.Status == http.StatusServiceUnavailable
	}
	return false
}

// List fetches all tasks.
func (c *Client) List(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create adds a task with the given text and returns it as stored.
func (c *Client) Create(ctx context.Context, text string) (*domain.Task, error) {
	var task domain.Task
	body := map[string]string{"text": text}
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies a partial update and returns the task as stored.
func (c *Client) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, patch, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes a task.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}

// do sends one request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		apiErr := &APIError{Status: res.StatusCode, Message: res.Status}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(res.Body).Decode(&errBody) == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out != nil && res.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
