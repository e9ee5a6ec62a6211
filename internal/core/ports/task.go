package ports

import (
	"context"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) error
	// FindByID returns the task with creator and assignee expanded.
	FindByID(ctx context.Context, id string) (domain.Task, error)
	ListCreatedBy(ctx context.Context, managerID string) ([]domain.Task, error)
	ListAssignedTo(ctx context.Context, employeeID string) ([]domain.Task, error)
	// UpdateStatus mutates the task only when employeeID matches the
	// assignee; otherwise it reports domain.ErrTaskNotFound.
	UpdateStatus(ctx context.Context, taskID, employeeID string, status domain.TaskStatus) (domain.Task, error)
	// Delete removes the task only when managerID matches the creator;
	// otherwise it reports domain.ErrTaskNotFound.
	Delete(ctx context.Context, taskID, managerID string) error
}

type TaskService interface {
	Create(ctx context.Context, managerID string, input domain.CreateTaskInput) (domain.Task, error)
	ListEmployees(ctx context.Context) ([]domain.User, error)
	ListCreatedBy(ctx context.Context, managerID string) ([]domain.Task, error)
	ListAssignedTo(ctx context.Context, employeeID string) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, taskID, employeeID string, status domain.TaskStatus) (domain.Task, error)
	Delete(ctx context.Context, taskID, managerID string) error
}
