package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	taskerrors "taskhub/contexts/task-management/task-service/domain/errors"
	taskhttp "taskhub/contexts/task-management/task-service/transport/http"
)

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskhttp.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.tasks.Handler.CreateTaskHandler(r.Context(), actingAccountID(r.Context()), req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.tasks.Handler.ListTasksHandler(
		r.Context(),
		actingAccountID(r.Context()),
		query.Get("page"),
		query.Get("limit"),
	)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskhttp.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.tasks.Handler.UpdateTaskHandler(r.Context(), actingAccountID(r.Context()), r.PathValue("id"), req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	resp, err := s.tasks.Handler.DeleteTaskHandler(r.Context(), actingAccountID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeTaskDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, taskerrors.ErrTaskNameRequired),
		errors.Is(err, taskerrors.ErrDueDateRequired),
		errors.Is(err, taskerrors.ErrInvalidDueDate):
		writeFailure(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, taskerrors.ErrTaskNotFound):
		// Foreign-owned tasks take this path too; the caller cannot tell
		// absent from not-owned.
		writeFailure(w, http.StatusNotFound, err.Error())
	case errors.Is(err, taskerrors.ErrOwnerRequired):
		writeFailure(w, http.StatusUnauthorized, "No token, authorization denied")
	default:
		writeFailure(w, http.StatusInternalServerError, "Server error")
	}
}
