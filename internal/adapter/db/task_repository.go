package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/ports"
)

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, priority, status, assigned_to, created_by, due_date)
VALUES (:id, :title, :description, :priority, :status, :assigned_to, :created_by, :due_date);
`

const selectTaskQuery = `
SELECT
  t.id, t.title, t.description, t.priority, t.status,
  t.assigned_to, t.created_by, t.due_date, t.created_at, t.updated_at,
  a.name AS assignee_name, a.email AS assignee_email, a.role AS assignee_role,
  c.name AS creator_name, c.email AS creator_email, c.role AS creator_role
FROM tasks t
LEFT JOIN users a ON a.id = t.assigned_to
LEFT JOIN users c ON c.id = t.created_by
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	Priority      string         `db:"priority"`
	Status        string         `db:"status"`
	AssignedTo    string         `db:"assigned_to"`
	CreatedBy     string         `db:"created_by"`
	DueDate       sql.NullTime   `db:"due_date"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	AssigneeName  sql.NullString `db:"assignee_name"`
	AssigneeEmail sql.NullString `db:"assignee_email"`
	AssigneeRole  sql.NullString `db:"assignee_role"`
	CreatorName   sql.NullString `db:"creator_name"`
	CreatorEmail  sql.NullString `db:"creator_email"`
	CreatorRole   sql.NullString `db:"creator_role"`
}

type insertTaskRow struct {
	ID          string       `db:"id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Priority    string       `db:"priority"`
	Status      string       `db:"status"`
	AssignedTo  string       `db:"assigned_to"`
	CreatedBy   string       `db:"created_by"`
	DueDate     sql.NullTime `db:"due_date"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	row := insertTaskRow{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		AssignedTo:  task.AssignedToID,
		CreatedBy:   task.CreatedByID,
	}
	if task.DueDate != nil {
		row.DueDate = sql.NullTime{Time: *task.DueDate, Valid: true}
	}

	_, err := r.db.NamedExecContext(ctx, insertTaskQuery, row)
	return err
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTaskQuery+"WHERE t.id = ?;", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListCreatedBy(ctx context.Context, managerID string) ([]domain.Task, error) {
	return r.list(ctx, selectTaskQuery+"WHERE t.created_by = ? ORDER BY t.created_at DESC, t.id DESC;", managerID)
}

func (r *TaskRepository) ListAssignedTo(ctx context.Context, employeeID string) ([]domain.Task, error) {
	return r.list(ctx, selectTaskQuery+"WHERE t.assigned_to = ? ORDER BY t.created_at DESC, t.id DESC;", employeeID)
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID, employeeID string, status domain.TaskStatus) (domain.Task, error) {
	// The assignee filter lives in the WHERE clause so a task belonging
	// to someone else is indistinguishable from a missing one.
	_, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ? WHERE id = ? AND assigned_to = ?;",
		string(status), taskID, employeeID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	var row taskRow
	err = r.db.GetContext(ctx, &row, selectTaskQuery+"WHERE t.id = ? AND t.assigned_to = ?;", taskID, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID, managerID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND created_by = ?;",
		taskID, managerID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) list(ctx context.Context, query string, arg any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, arg); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Priority:     domain.TaskPriority(row.Priority),
		Status:       domain.TaskStatus(row.Status),
		AssignedToID: row.AssignedTo,
		CreatedByID:  row.CreatedBy,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.AssigneeName.Valid {
		task.AssignedTo = &domain.UserSummary{
			ID:    row.AssignedTo,
			Name:  row.AssigneeName.String,
			Email: row.AssigneeEmail.String,
			Role:  domain.Role(row.AssigneeRole.String),
		}
	}

	if row.CreatorName.Valid {
		task.CreatedBy = &domain.UserSummary{
			ID:    row.CreatedBy,
			Name:  row.CreatorName.String,
			Email: row.CreatorEmail.String,
			Role:  domain.Role(row.CreatorRole.String),
		}
	}

	return task
}
