package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "taskhub/contexts/task-management/task-service/domain/errors"
	"taskhub/contexts/task-management/task-service/ports"

	"gorm.io/gorm"
)

type taskModel struct {
	TaskID      string    `gorm:"column:task_id;primaryKey"`
	AccountID   string    `gorm:"column:account_id;index"`
	TaskName    string    `gorm:"column:task_name"`
	Description string    `gorm:"column:description"`
	DueDate     time.Time `gorm:"column:due_date"`
	CreatedAt   time.Time `gorm:"column:created_at;index"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (taskModel) TableName() string { return "tasks" }

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&taskModel{})
}

func (r *Repository) CreateTask(ctx context.Context, task ports.Task) error {
	row := taskModelFromEntity(task)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListTasks(ctx context.Context, accountID string, offset int, limit int) ([]ports.Task, int64, error) {
	accountID = strings.TrimSpace(accountID)

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("account_id = ?", accountID).
		Count(&total).
		Error; err != nil {
		return nil, 0, err
	}

	var rows []taskModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, 0, err
	}

	tasks := make([]ports.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toEntity())
	}
	return tasks, total, nil
}

func (r *Repository) GetTask(ctx context.Context, accountID string, taskID string) (ports.Task, error) {
	var row taskModel
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND account_id = ?", strings.TrimSpace(taskID), strings.TrimSpace(accountID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Task{}, domainerrors.ErrTaskNotFound
		}
		return ports.Task{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateTask(ctx context.Context, accountID string, taskID string, update ports.TaskUpdate) (ports.Task, error) {
	result := r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("task_id = ? AND account_id = ?", strings.TrimSpace(taskID), strings.TrimSpace(accountID)).
		Updates(map[string]any{
			"task_name":   update.TaskName,
			"description": update.Description,
			"due_date":    update.DueDate.UTC(),
			"updated_at":  update.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return ports.Task{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ports.Task{}, domainerrors.ErrTaskNotFound
	}
	return r.GetTask(ctx, accountID, taskID)
}

func (r *Repository) DeleteTask(ctx context.Context, accountID string, taskID string) error {
	result := r.db.WithContext(ctx).
		Where("task_id = ? AND account_id = ?", strings.TrimSpace(taskID), strings.TrimSpace(accountID)).
		Delete(&taskModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTaskNotFound
	}
	return nil
}

func taskModelFromEntity(task ports.Task) taskModel {
	return taskModel{
		TaskID:      task.TaskID,
		AccountID:   task.AccountID,
		TaskName:    task.TaskName,
		Description: task.Description,
		DueDate:     task.DueDate.UTC(),
		CreatedAt:   task.CreatedAt.UTC(),
		UpdatedAt:   task.UpdatedAt.UTC(),
	}
}

func (m taskModel) toEntity() ports.Task {
	return ports.Task{
		TaskID:      m.TaskID,
		AccountID:   m.AccountID,
		TaskName:    m.TaskName,
		Description: m.Description,
		DueDate:     m.DueDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
