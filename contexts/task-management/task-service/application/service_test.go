package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domainerrors "taskhub/contexts/task-management/task-service/domain/errors"
	"taskhub/contexts/task-management/task-service/ports"
)

type testRepo struct {
	created   []ports.Task
	listCalls []listCall
	listTotal int64
}

type listCall struct {
	accountID string
	offset    int
	limit     int
}

func (r *testRepo) CreateTask(ctx context.Context, task ports.Task) error {
	r.created = append(r.created, task)
	return nil
}

func (r *testRepo) ListTasks(ctx context.Context, accountID string, offset int, limit int) ([]ports.Task, int64, error) {
	r.listCalls = append(r.listCalls, listCall{accountID: accountID, offset: offset, limit: limit})
	return []ports.Task{}, r.listTotal, nil
}

func (r *testRepo) GetTask(ctx context.Context, accountID string, taskID string) (ports.Task, error) {
	return ports.Task{}, domainerrors.ErrTaskNotFound
}

func (r *testRepo) UpdateTask(ctx context.Context, accountID string, taskID string, update ports.TaskUpdate) (ports.Task, error) {
	return ports.Task{}, domainerrors.ErrTaskNotFound
}

func (r *testRepo) DeleteTask(ctx context.Context, accountID string, taskID string) error {
	return domainerrors.ErrTaskNotFound
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type seqIDs struct {
	next int
}

func (g *seqIDs) NewID(_ context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("task-%d", g.next), nil
}

func newTestService(repo *testRepo) Service {
	return Service{
		Repo:  repo,
		Clock: fixedClock{now: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)},
		IDs:   &seqIDs{},
	}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := &testRepo{}
	service := newTestService(repo)

	due := time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC)
	task, err := service.Create(context.Background(), "account-1", "Buy milk", "semi-skimmed", due)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.TaskID != "task-1" {
		t.Fatalf("expected generated id, got %q", task.TaskID)
	}
	if task.AccountID != "account-1" {
		t.Fatalf("expected owner account-1, got %q", task.AccountID)
	}
	if task.CreatedAt.IsZero() || !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Fatalf("expected created/updated set together, got %v / %v", task.CreatedAt, task.UpdatedAt)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted task, got %d", len(repo.created))
	}
}

func TestCreateValidation(t *testing.T) {
	service := newTestService(&testRepo{})
	due := time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC)

	_, err := service.Create(context.Background(), "account-1", "   ", "", due)
	if !errors.Is(err, domainerrors.ErrTaskNameRequired) {
		t.Fatalf("expected name required, got %v", err)
	}

	_, err = service.Create(context.Background(), "account-1", "Buy milk", "", time.Time{})
	if !errors.Is(err, domainerrors.ErrDueDateRequired) {
		t.Fatalf("expected due date required, got %v", err)
	}

	_, err = service.Create(context.Background(), "", "Buy milk", "", due)
	if !errors.Is(err, domainerrors.ErrOwnerRequired) {
		t.Fatalf("expected owner required, got %v", err)
	}
}

func TestListDefaultsAndOffsets(t *testing.T) {
	repo := &testRepo{listTotal: 7}
	service := newTestService(repo)

	page, err := service.List(context.Background(), "account-1", 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("expected default page 1, got %d", page.Page)
	}
	if got := repo.listCalls[0]; got.offset != 0 || got.limit != 3 {
		t.Fatalf("expected offset 0 limit 3, got %+v", got)
	}
	// 7 tasks at 3 per page is 3 pages.
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", page.TotalPages)
	}

	if _, err := service.List(context.Background(), "account-1", 3, 2); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if got := repo.listCalls[1]; got.offset != 4 || got.limit != 2 {
		t.Fatalf("expected offset 4 limit 2, got %+v", got)
	}
}

func TestListEmptyOwnerHasZeroPages(t *testing.T) {
	repo := &testRepo{listTotal: 0}
	service := newTestService(repo)

	page, err := service.List(context.Background(), "account-1", 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 0 || page.TotalPages != 0 {
		t.Fatalf("expected empty page metadata, got total=%d pages=%d", page.Total, page.TotalPages)
	}
}

func TestUpdateValidation(t *testing.T) {
	service := newTestService(&testRepo{})
	due := time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC)

	_, err := service.Update(context.Background(), "account-1", "task-1", "", "", due)
	if !errors.Is(err, domainerrors.ErrTaskNameRequired) {
		t.Fatalf("expected name required, got %v", err)
	}

	_, err = service.Update(context.Background(), "account-1", "", "Buy milk", "", due)
	if !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected not found for blank id, got %v", err)
	}

	_, err = service.Update(context.Background(), "account-1", "task-1", "Buy milk", "", due)
	if !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected repository not-found to pass through, got %v", err)
	}
}

func TestDeleteMissingTaskReportsNotFound(t *testing.T) {
	service := newTestService(&testRepo{})

	err := service.Delete(context.Background(), "account-1", "task-404")
	if !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
