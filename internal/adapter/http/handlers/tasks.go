package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/dto"
	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/mapper"
	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/middleware"
	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/validation"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/ports"
	"github.com/codeskillotech/taskmanagement-backend/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
		)
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), identity.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgEmployeeNotFound, lang),
			)
		case errors.Is(err, domain.ErrNotAnEmployee):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgAssigneeNotEmployee, lang),
			)
		default:
			zap.L().Error("failed to create task", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTaskResponse{
		Message: "Task created and assigned successfully",
		Task:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) ListEmployees(c *gin.Context) {
	lang := middleware.GetLang(c)

	employees, err := h.taskService.ListEmployees(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list employees", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListEmployees, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.EmployeesResponse{Employees: mapper.ToUserItems(employees)})
}

func (h *TaskHandler) ListManagerTasks(c *gin.Context) {
	h.listTasks(c, func(identity domain.Identity) ([]domain.Task, error) {
		return h.taskService.ListCreatedBy(c.Request.Context(), identity.UserID)
	})
}

func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	h.listTasks(c, func(identity domain.Identity) ([]domain.Task, error) {
		return h.taskService.ListAssignedTo(c.Request.Context(), identity.UserID)
	})
}

func (h *TaskHandler) listTasks(c *gin.Context, list func(domain.Identity) ([]domain.Task, error)) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
		)
		return
	}

	tasks, err := list(identity)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.String("user_id", identity.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TasksResponse{Tasks: mapper.ToTaskItems(tasks)})
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
		)
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatus, lang),
		)
		return
	}

	task, err := h.taskService.UpdateStatus(c.Request.Context(), c.Param("id"), identity.UserID, domain.TaskStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatus, lang),
			)
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		default:
			zap.L().Error("failed to update task status", zap.String("task_id", c.Param("id")), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateStatus, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.UpdateTaskStatusResponse{
		Message: "Task status updated",
		Task:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
		)
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), c.Param("id"), identity.UserID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted successfully"})
}
