package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/dto"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	employeeName := strings.TrimSpace(req.EmployeeName)
	if title == "" || employeeName == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	description := ""
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		parsed, ok := domain.ParsePriority(*req.Priority)
		if !ok {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		priority = parsed
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsedDueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsedDueDate
	}

	return domain.CreateTaskInput{
		Title:        title,
		Description:  description,
		Priority:     priority,
		EmployeeName: employeeName,
		DueDate:      dueDate,
	}, nil
}
