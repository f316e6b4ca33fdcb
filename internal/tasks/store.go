// Package tasks tracks background generation jobs in memory.
package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/seoscribe/seoscribe/internal/model"
)

// ErrTaskNotFound indicates no task exists with the given ID for the user.
var ErrTaskNotFound = errors.New("task not found")

// DefaultRetention is how long finished tasks stay queryable.
const DefaultRetention = time.Hour

// janitorInterval is how often expired tasks are purged.
const janitorInterval = time.Minute

// Store is a bounded in-memory task registry. Tasks older than the
// retention window are purged by a janitor goroutine, so the map cannot
// grow without limit.
type Store struct {
	mu        sync.RWMutex
	tasks     map[string]*model.Task
	retention time.Duration
	logger    *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewStore creates a task store and starts its janitor.
func NewStore(retention time.Duration, logger *slog.Logger) *Store {
	if retention <= 0 {
		retention = DefaultRetention
	}

	s := &Store{
		tasks:     make(map[string]*model.Task),
		retention: retention,
		logger:    logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go s.janitor()

	return s
}

// Create registers a new processing task and returns it.
func (s *Store) Create(ownerID, message string) *model.Task {
	now := time.Now()
	task := &model.Task{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Status:    model.TaskProcessing,
		Progress:  0,
		Message:   message,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()

	return task
}

// Get returns a copy of the task, scoped to its owner.
func (s *Store) Get(id, ownerID string) (*model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, ErrTaskNotFound
	}

	copied := *task
	return &copied, nil
}

// SetProgress updates a running task's progress and message.
func (s *Store) SetProgress(id string, progress int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.IsTerminal() {
		return
	}
	task.Progress = progress
	task.Message = message
	task.UpdatedAt = time.Now()
}

// Complete marks a task finished with its result.
func (s *Store) Complete(id string, result any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return
	}
	task.Status = model.TaskCompleted
	task.Progress = 100
	task.Message = "completed"
	task.Result = result
	task.UpdatedAt = time.Now()
}

// Fail marks a task failed with an error message.
func (s *Store) Fail(id string, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return
	}
	task.Status = model.TaskFailed
	task.Message = "failed"
	task.Error = errMsg
	task.UpdatedAt = time.Now()
}

// Len returns the number of tracked tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Shutdown stops the janitor. It blocks until the goroutine exits or
// the context is done.
func (s *Store) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) janitor() {
	defer close(s.done)

	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.purgeExpired()
		}
	}
}

// purgeExpired removes tasks whose last update is past retention.
func (s *Store) purgeExpired() {
	cutoff := time.Now().Add(-s.retention)

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, task := range s.tasks {
		if task.UpdatedAt.Before(cutoff) {
			delete(s.tasks, id)
			purged++
		}
	}
	if purged > 0 {
		s.logger.Debug("purged expired tasks", slog.Int("count", purged))
	}
}
