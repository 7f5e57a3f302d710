package task

import "context"

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreatedBy   string `json:"created_by"`
	DueBy       int64  `json:"due_by"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID int64 `json:"task_id"`
}

// UpdateTaskRequest is the request for updating a task's mutable fields.
type UpdateTaskRequest struct {
	TaskID      int64  `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DueBy       int64  `json:"due_by"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID int64 `json:"task_id"`
}

// ListTasksRequest is the request for listing an agent's tasks.
type ListTasksRequest struct {
	Owner string `json:"owner"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// TaskResponse is the response for a single task.
type TaskResponse struct {
	TaskID      int64  `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TimeCreated int64  `json:"time_created"`
	CreatedBy   string `json:"created_by"`
	DueBy       int64  `json:"due_by"`
}

// TaskPort defines the interface other modules use to access task
// functionality.
type TaskPort interface {
	Create(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	ListByOwner(ctx context.Context, owner string) (*ListTasksResponse, error)
	Get(ctx context.Context, taskID int64) (*TaskResponse, error)
	Update(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error)
	Delete(ctx context.Context, taskID int64) (*TaskResponse, error)
}
