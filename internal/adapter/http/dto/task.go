package dto

type TaskItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	AssignedTo  *UserItem `json:"assigned_to,omitempty"`
	CreatedBy   *UserItem `json:"created_by,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title        string  `json:"title"`
	EmployeeName string  `json:"employeeName"`
	Description  *string `json:"description"`
	Priority     *string `json:"priority"`
	DueDate      *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

type CreateTaskResponse struct {
	Message string   `json:"message"`
	Task    TaskItem `json:"task"`
}

type TasksResponse struct {
	Tasks []TaskItem `json:"tasks"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

type UpdateTaskStatusResponse struct {
	Message string   `json:"message"`
	Task    TaskItem `json:"task"`
}
