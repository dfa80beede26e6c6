package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "taskhub/contexts/task-management/task-service/domain/errors"
	"taskhub/contexts/task-management/task-service/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 3
	maxLimit     = 100
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDs    ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) Create(ctx context.Context, accountID string, name string, description string, due time.Time) (ports.Task, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return ports.Task{}, domainerrors.ErrOwnerRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.Task{}, domainerrors.ErrTaskNameRequired
	}
	if due.IsZero() {
		return ports.Task{}, domainerrors.ErrDueDateRequired
	}

	taskID, err := s.IDs.NewID(ctx)
	if err != nil {
		return ports.Task{}, err
	}
	now := s.Clock.Now().UTC()
	task := ports.Task{
		TaskID:      taskID,
		AccountID:   accountID,
		TaskName:    name,
		Description: description,
		DueDate:     due.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.CreateTask(ctx, task); err != nil {
		return ports.Task{}, err
	}

	resolveLogger(s.Logger).Info("task created",
		"event", "task_created",
		"module", "task-management/task-service",
		"layer", "application",
		"task_id", task.TaskID,
		"account_id", accountID,
	)
	return task, nil
}

// List returns one page of the owner's tasks, newest first. Absent or
// invalid paging parameters fall back to page 1 with a page size of 3; the
// full set is never returned in one response.
func (s Service) List(ctx context.Context, accountID string, page int, limit int) (ports.TaskPage, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return ports.TaskPage{}, domainerrors.ErrOwnerRequired
	}
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	tasks, total, err := s.Repo.ListTasks(ctx, accountID, (page-1)*limit, limit)
	if err != nil {
		return ports.TaskPage{}, err
	}
	return ports.TaskPage{
		Tasks:      tasks,
		Total:      total,
		Page:       page,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s Service) Update(ctx context.Context, accountID string, taskID string, name string, description string, due time.Time) (ports.Task, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return ports.Task{}, domainerrors.ErrOwnerRequired
	}
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return ports.Task{}, domainerrors.ErrTaskNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.Task{}, domainerrors.ErrTaskNameRequired
	}
	if due.IsZero() {
		return ports.Task{}, domainerrors.ErrDueDateRequired
	}

	return s.Repo.UpdateTask(ctx, accountID, taskID, ports.TaskUpdate{
		TaskName:    name,
		Description: description,
		DueDate:     due.UTC(),
		UpdatedAt:   s.Clock.Now().UTC(),
	})
}

func (s Service) Delete(ctx context.Context, accountID string, taskID string) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return domainerrors.ErrOwnerRequired
	}
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return domainerrors.ErrTaskNotFound
	}

	if err := s.Repo.DeleteTask(ctx, accountID, taskID); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("task deleted",
		"event", "task_deleted",
		"module", "task-management/task-service",
		"layer", "application",
		"task_id", taskID,
		"account_id", accountID,
	)
	return nil
}
