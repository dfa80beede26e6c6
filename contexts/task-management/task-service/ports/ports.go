package ports

import (
	"context"
	"time"
)

type Task struct {
	TaskID      string
	AccountID   string
	TaskName    string
	Description string
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskUpdate carries the only mutable fields. Id, owner, and creation time
// never change after create.
type TaskUpdate struct {
	TaskName    string
	Description string
	DueDate     time.Time
	UpdatedAt   time.Time
}

type TaskPage struct {
	Tasks      []Task
	Total      int64
	Page       int
	TotalPages int
}

// Repository persists tasks. The accountID argument scopes every call to
// the acting owner; a task owned by someone else is indistinguishable from
// one that does not exist.
type Repository interface {
	CreateTask(ctx context.Context, task Task) error
	ListTasks(ctx context.Context, accountID string, offset int, limit int) ([]Task, int64, error)
	GetTask(ctx context.Context, accountID string, taskID string) (Task, error)
	UpdateTask(ctx context.Context, accountID string, taskID string, update TaskUpdate) (Task, error)
	DeleteTask(ctx context.Context, accountID string, taskID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
