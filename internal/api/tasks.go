package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/metrics"
)

// createTaskRequest is the POST /tasks body.
type createTaskRequest struct {
	Text string `json:"text"`
}

// handleListTasks returns every task in store order.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, domain.ErrStoreNotReady.Error())
		return
	}

	tasks, err := s.store.List(r.Context())
	if err != nil {
		s.storeFailure(w, "list", err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// handleCreateTask inserts a new task from {text}.
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, domain.ErrStoreNotReady.Error())
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	text, err := domain.ValidateText(req.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := s.store.Create(r.Context(), text)
	if err != nil {
		s.storeFailure(w, "create", err)
		return
	}

	metrics.TasksCreated.Inc()
	writeJSON(w, http.StatusCreated, task)
}

// handleUpdateTask merges {text?, completed?} into the task at {id}.
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, domain.ErrStoreNotReady.Error())
		return
	}

	var patch domain.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if patch.Empty() {
		writeError(w, http.StatusBadRequest, domain.ErrNoFields.Error())
		return
	}

	task, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		s.taskError(w, "update", err)
		return
	}

	metrics.TasksUpdated.Inc()
	writeJSON(w, http.StatusOK, task)
}

// handleDeleteTask removes the task at {id}.
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, domain.ErrStoreNotReady.Error())
		return
	}

	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.taskError(w, "delete", err)
		return
	}

	metrics.TasksDeleted.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// taskError maps an identifier-bearing store error to its HTTP status:
// malformed id -> 400, missing record -> 404, anything else is a store fault.
func (s *Server) taskError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.storeFailure(w, op, err)
	}
}

// storeFailure reports a store fault: logged server-side with the detail,
// generic message to the caller.
func (s *Server) storeFailure(w http.ResponseWriter, op string, err error) {
	log.Printf("[api] store %s failed: %v", op, err)
	metrics.StoreErrors.WithLabelValues(op).Inc()
	writeError(w, http.StatusInternalServerError, "internal server error")
}
