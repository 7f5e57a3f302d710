package task

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/example/agent-taskboard/domain/task"
	"gorm.io/gorm"
)

// ErrTaskNotFound is returned when no task has the given id.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository handles task persistence using GORM.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task. The database assigns the next task id.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its id.
func (r *TaskRepository) FindByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	var t domain.Task
	if err := r.db.WithContext(ctx).First(&t, "task_id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// FindByOwner returns all tasks created by the given agent, ascending by
// due_by. Ties are broken by task_id, which preserves insertion order.
func (r *TaskRepository) FindByOwner(ctx context.Context, owner string) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("created_by = ?", owner).
		Order("due_by ASC, task_id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Save overwrites an existing task record.
func (r *TaskRepository) Save(ctx context.Context, t *domain.Task) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// Delete removes a task by id.
func (r *TaskRepository) Delete(ctx context.Context, taskID int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Task{}, "task_id = ?", taskID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
