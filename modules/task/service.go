package task

import (
	"context"
	"log"
	"time"

	domain "github.com/example/agent-taskboard/domain/task"
	"github.com/example/agent-taskboard/modules/cache"
)

const (
	// DefaultCategory is applied when a task is created without a category.
	DefaultCategory = "general"
	// DefaultOwner is the placeholder owner for tasks created without one.
	DefaultOwner = "0"
	// DefaultDueOffsetMillis is added to the creation time when no deadline
	// is supplied: 24 hours in milliseconds.
	DefaultDueOffsetMillis = 24 * 60 * 60 * 1000
)

// TaskService handles the task lifecycle. The cache is optional; when set,
// per-owner listings are served cache-aside and invalidated on every write.
type TaskService struct {
	repo  *TaskRepository
	cache *cache.Cache
}

// NewTaskService creates a new TaskService. cache may be nil.
func NewTaskService(repo *TaskRepository, c *cache.Cache) *TaskService {
	return &TaskService{
		repo:  repo,
		cache: c,
	}
}

// Create persists a new task, filling in defaults for missing fields.
func (s *TaskService) Create(ctx context.Context, title, description, category, createdBy string, dueBy int64) (*domain.Task, error) {
	now := time.Now().UnixMilli()
	if category == "" {
		category = DefaultCategory
	}
	if createdBy == "" {
		createdBy = DefaultOwner
	}
	if dueBy == 0 {
		dueBy = now + DefaultDueOffsetMillis
	}

	t := &domain.Task{
		Title:       title,
		Description: description,
		Category:    category,
		TimeCreated: now,
		CreatedBy:   createdBy,
		DueBy:       dueBy,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.invalidateOwner(ctx, t.CreatedBy)
	return t, nil
}

// ListByOwner returns the owner's tasks ascending by deadline. An empty owner
// yields an empty list rather than every task in the store.
func (s *TaskService) ListByOwner(ctx context.Context, owner string) ([]domain.Task, error) {
	if owner == "" {
		return []domain.Task{}, nil
	}

	if s.cache != nil {
		var cached []domain.Task
		hit, err := s.cache.Get(ctx, ownerKey(owner), &cached)
		if err != nil {
			log.Printf("[task] Warning: cache read failed for owner %s: %v", owner, err)
		} else if hit {
			return cached, nil
		}
	}

	tasks, err := s.repo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, ownerKey(owner), tasks); err != nil {
			log.Printf("[task] Warning: cache write failed for owner %s: %v", owner, err)
		}
	}
	return tasks, nil
}

// Get retrieves a single task by id.
func (s *TaskService) Get(ctx context.Context, taskID int64) (*domain.Task, error) {
	return s.repo.FindByID(ctx, taskID)
}

// Update overwrites the four mutable fields of an existing task. TaskID,
// CreatedBy and TimeCreated are immutable after creation.
func (s *TaskService) Update(ctx context.Context, taskID int64, title, description, category string, dueBy int64) (*domain.Task, error) {
	t, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	t.Title = title
	t.Description = description
	t.Category = category
	t.DueBy = dueBy
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}

	s.invalidateOwner(ctx, t.CreatedBy)
	return t, nil
}

// Delete removes a task and returns its pre-deletion snapshot.
func (s *TaskService) Delete(ctx context.Context, taskID int64) (*domain.Task, error) {
	t, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, taskID); err != nil {
		return nil, err
	}

	s.invalidateOwner(ctx, t.CreatedBy)
	return t, nil
}

// invalidateOwner drops the owner's cached listing. Cache faults are
// best-effort and never fail the operation.
func (s *TaskService) invalidateOwner(ctx context.Context, owner string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, ownerKey(owner)); err != nil {
		log.Printf("[task] Warning: cache invalidation failed for owner %s: %v", owner, err)
	}
}

func ownerKey(owner string) string {
	return "owner:" + owner
}
