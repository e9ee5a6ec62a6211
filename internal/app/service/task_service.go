package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository, userRepository ports.UserRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, userRepository: userRepository}
}

func (s *TaskService) Create(ctx context.Context, managerID string, input domain.CreateTaskInput) (domain.Task, error) {
	employee, err := s.userRepository.FindByName(ctx, input.EmployeeName)
	if err != nil {
		return domain.Task{}, err
	}
	if employee.Role != domain.RoleEmployee {
		return domain.Task{}, domain.ErrNotAnEmployee
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	task := domain.Task{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Priority:     priority,
		Status:       domain.TaskStatusPending,
		AssignedToID: employee.ID,
		CreatedByID:  managerID,
		DueDate:      input.DueDate,
	}
	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, err
	}

	// Re-read to pick up store timestamps and the expanded user summaries.
	return s.taskRepository.FindByID(ctx, task.ID)
}

func (s *TaskService) ListEmployees(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.ListByRole(ctx, domain.RoleEmployee)
}

func (s *TaskService) ListCreatedBy(ctx context.Context, managerID string) ([]domain.Task, error) {
	return s.taskRepository.ListCreatedBy(ctx, managerID)
}

func (s *TaskService) ListAssignedTo(ctx context.Context, employeeID string) ([]domain.Task, error) {
	return s.taskRepository.ListAssignedTo(ctx, employeeID)
}

func (s *TaskService) UpdateStatus(ctx context.Context, taskID, employeeID string, status domain.TaskStatus) (domain.Task, error) {
	if !status.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}
	return s.taskRepository.UpdateStatus(ctx, taskID, employeeID, status)
}

func (s *TaskService) Delete(ctx context.Context, taskID, managerID string) error {
	return s.taskRepository.Delete(ctx, taskID, managerID)
}
