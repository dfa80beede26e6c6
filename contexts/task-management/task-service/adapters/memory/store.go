package memory

import (
	"context"
	"sort"
	"sync"

	domainerrors "taskhub/contexts/task-management/task-service/domain/errors"
	"taskhub/contexts/task-management/task-service/ports"
)

type taskRecord struct {
	task ports.Task
	seq  int64
}

// Store is an in-memory task repository with the same ownership-scoping
// contract as the postgres adapter.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]taskRecord
	nextSeq int64
}

func NewStore() *Store {
	return &Store{byID: make(map[string]taskRecord)}
}

func (s *Store) CreateTask(ctx context.Context, task ports.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	s.byID[task.TaskID] = taskRecord{task: task, seq: s.nextSeq}
	return nil
}

func (s *Store) ListTasks(ctx context.Context, accountID string, offset int, limit int) ([]ports.Task, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]taskRecord, 0, len(s.byID))
	for _, record := range s.byID {
		if record.task.AccountID == accountID {
			owned = append(owned, record)
		}
	}
	// Creation time descending; the insertion sequence breaks ties so
	// back-to-back creates keep a stable order.
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].task.CreatedAt.Equal(owned[j].task.CreatedAt) {
			return owned[i].seq > owned[j].seq
		}
		return owned[i].task.CreatedAt.After(owned[j].task.CreatedAt)
	})

	total := int64(len(owned))
	if offset >= len(owned) {
		return []ports.Task{}, total, nil
	}
	end := offset + limit
	if limit < 1 || end > len(owned) {
		end = len(owned)
	}

	page := make([]ports.Task, 0, end-offset)
	for _, record := range owned[offset:end] {
		page = append(page, record.task)
	}
	return page, total, nil
}

func (s *Store) GetTask(ctx context.Context, accountID string, taskID string) (ports.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byID[taskID]
	if !ok || record.task.AccountID != accountID {
		return ports.Task{}, domainerrors.ErrTaskNotFound
	}
	return record.task, nil
}

func (s *Store) UpdateTask(ctx context.Context, accountID string, taskID string, update ports.TaskUpdate) (ports.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[taskID]
	if !ok || record.task.AccountID != accountID {
		return ports.Task{}, domainerrors.ErrTaskNotFound
	}

	record.task.TaskName = update.TaskName
	record.task.Description = update.Description
	record.task.DueDate = update.DueDate
	record.task.UpdatedAt = update.UpdatedAt
	s.byID[taskID] = record
	return record.task, nil
}

func (s *Store) DeleteTask(ctx context.Context, accountID string, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[taskID]
	if !ok || record.task.AccountID != accountID {
		return domainerrors.ErrTaskNotFound
	}
	delete(s.byID, taskID)
	return nil
}
