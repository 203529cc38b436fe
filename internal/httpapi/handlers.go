package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"task-tracker/internal/errors"
	"task-tracker/internal/services"
	"task-tracker/internal/validation"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var payload validation.CreateTaskPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fields, violations := s.validator.ValidateCreate(payload)
	if len(violations) > 0 {
		writeError(w, http.StatusBadRequest, violations)
		return
	}

	created, err := s.svc.Create(r.Context(), services.CreateTaskInput{
		Name:        fields.Name,
		IsCompleted: fields.IsCompleted,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.svc.FindAll(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	task, err := s.svc.FindOne(r.Context(), id)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			writeError(w, http.StatusNotFound, taskNotFoundMessage(id))
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload validation.UpdateTaskPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fields, violations := s.validator.ValidateUpdate(payload)
	if len(violations) > 0 {
		writeError(w, http.StatusBadRequest, violations)
		return
	}

	updated, err := s.svc.Update(r.Context(), id, services.UpdateTaskInput{
		Name:        fields.Name,
		IsCompleted: fields.IsCompleted,
	})
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			writeError(w, http.StatusNotFound, taskNotFoundMessage(id))
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	result, err := s.svc.Delete(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func taskNotFoundMessage(id string) string {
	return fmt.Sprintf("Task with id %s not found", id)
}

// writeServiceError maps unexpected service failures to a 500 response.
// Persistence faults are not refined further; the detail goes to the log,
// not to the caller.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed", map[string]any{
		"method": r.Method,
		"path":   r.URL.Path,
		"error":  err.Error(),
	})
	writeError(w, http.StatusInternalServerError, "internal server error")
}
