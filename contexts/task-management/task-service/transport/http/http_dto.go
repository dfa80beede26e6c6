package httptransport

type TaskRequest struct {
	TaskName    string `json:"taskName"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

type TaskDTO struct {
	ID          string `json:"id"`
	TaskName    string `json:"taskName"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type TaskResponse struct {
	Status  bool     `json:"status"`
	Data    *TaskDTO `json:"data"`
	Message string   `json:"message"`
}

type TaskListResponse struct {
	Status     bool      `json:"status"`
	Data       []TaskDTO `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	Message    string    `json:"message"`
}

type DeleteResponse struct {
	Status  bool   `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status  bool   `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}
