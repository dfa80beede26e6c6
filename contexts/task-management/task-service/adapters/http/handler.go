package httpadapter

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"taskhub/contexts/task-management/task-service/application"
	domainerrors "taskhub/contexts/task-management/task-service/domain/errors"
	"taskhub/contexts/task-management/task-service/ports"
	httptransport "taskhub/contexts/task-management/task-service/transport/http"
)

// Accepted due date layouts. The browser client posts datetime-local values
// without a zone; API clients send RFC3339.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// CreateTaskHandler godoc
// @Summary Create a task
// @Description Creates a task owned by the authenticated account.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.TaskRequest true "Task payload"
// @Success 201 {object} httptransport.TaskResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /tasks [post]
func (h Handler) CreateTaskHandler(ctx context.Context, accountID string, req httptransport.TaskRequest) (httptransport.TaskResponse, error) {
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	task, err := h.Service.Create(ctx, accountID, req.TaskName, req.Description, due)
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	dto := toTaskDTO(task)
	return httptransport.TaskResponse{
		Status:  true,
		Data:    &dto,
		Message: "Task created successfully",
	}, nil
}

// ListTasksHandler godoc
// @Summary List tasks
// @Description Returns one page of the account's tasks, newest first.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 3)"
// @Success 200 {object} httptransport.TaskListResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /tasks [get]
func (h Handler) ListTasksHandler(ctx context.Context, accountID string, pageRaw string, limitRaw string) (httptransport.TaskListResponse, error) {
	page, err := h.Service.List(ctx, accountID, parsePositiveInt(pageRaw), parsePositiveInt(limitRaw))
	if err != nil {
		return httptransport.TaskListResponse{}, err
	}

	items := make([]httptransport.TaskDTO, 0, len(page.Tasks))
	for _, task := range page.Tasks {
		items = append(items, toTaskDTO(task))
	}
	message := "Tasks fetched successfully"
	if len(items) == 0 {
		message = "No tasks found"
	}
	return httptransport.TaskListResponse{
		Status:     true,
		Data:       items,
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Message:    message,
	}, nil
}

// UpdateTaskHandler godoc
// @Summary Update a task
// @Description Replaces name, description, and due date of an owned task.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task id"
// @Param request body httptransport.TaskRequest true "Task payload"
// @Success 200 {object} httptransport.TaskResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /tasks/{id} [put]
func (h Handler) UpdateTaskHandler(ctx context.Context, accountID string, taskID string, req httptransport.TaskRequest) (httptransport.TaskResponse, error) {
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	task, err := h.Service.Update(ctx, accountID, taskID, req.TaskName, req.Description, due)
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	dto := toTaskDTO(task)
	return httptransport.TaskResponse{
		Status:  true,
		Data:    &dto,
		Message: "Task updated successfully",
	}, nil
}

// DeleteTaskHandler godoc
// @Summary Delete a task
// @Description Permanently removes an owned task.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task id"
// @Success 200 {object} httptransport.DeleteResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /tasks/{id} [delete]
func (h Handler) DeleteTaskHandler(ctx context.Context, accountID string, taskID string) (httptransport.DeleteResponse, error) {
	if err := h.Service.Delete(ctx, accountID, taskID); err != nil {
		return httptransport.DeleteResponse{}, err
	}
	return httptransport.DeleteResponse{
		Status:  true,
		Data:    nil,
		Message: "Task deleted successfully",
	}, nil
}

func parseDueDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, domainerrors.ErrDueDateRequired
	}
	for _, layout := range dueDateLayouts {
		if due, err := time.Parse(layout, raw); err == nil {
			return due, nil
		}
	}
	return time.Time{}, domainerrors.ErrInvalidDueDate
}

// parsePositiveInt mirrors the lenient client contract: anything that is
// not a positive integer falls back to the service default.
func parsePositiveInt(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 1 {
		return 0
	}
	return value
}

func toTaskDTO(task ports.Task) httptransport.TaskDTO {
	return httptransport.TaskDTO{
		ID:          task.TaskID,
		TaskName:    task.TaskName,
		Description: task.Description,
		DueDate:     task.DueDate.UTC().Format(time.RFC3339),
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
