package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// ParsePriority accepts any casing; an empty value falls back to medium.
func ParsePriority(value string) (TaskPriority, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return TaskPriorityMedium, true
	}
	switch TaskPriority(trimmed) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return TaskPriority(trimmed), true
	}
	return "", false
}

// Task references its creator and assignee weakly by user id. AssignedTo
// and CreatedBy carry the joined summaries when the task was loaded for
// display; they stay nil on bare writes.
type Task struct {
	ID           string
	Title        string
	Description  string
	Priority     TaskPriority
	Status       TaskStatus
	AssignedToID string
	CreatedByID  string
	DueDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	AssignedTo   *UserSummary
	CreatedBy    *UserSummary
}

type CreateTaskInput struct {
	Title        string
	Description  string
	Priority     TaskPriority
	EmployeeName string
	DueDate      *time.Time
}
