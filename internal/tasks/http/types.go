package http

import "github.com/hetu-labs/hetu-middleware/internal/tasks/domain"

// CreateTaskRequest is the body of POST /task/create.
type CreateTaskRequest struct {
	ProjectName        string `json:"project_name" binding:"required"`
	ProjectDescription string `json:"project_description"`
	ProjectIcon        string `json:"project_icon"`
	TaskType           string `json:"task_type" binding:"required"`
	TwitterUsername    string `json:"twitter_username" binding:"required"`
	TwitterURL         string `json:"twitter_url" binding:"required"`
	Description        string `json:"description"`
	UserWallet         string `json:"user_wallet"`
}

// CreateTaskResponse is the body of a POST /task/create reply.
type CreateTaskResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	TaskID     string `json:"task_id,omitempty"`
	FluxTaskID string `json:"flux_task_id,omitempty"`
	VLCValue   *int64 `json:"vlc_value,omitempty"`
}

// ListTasksRequest is the body of POST /task/list.
type ListTasksRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ListTasksResponse is the body of a POST /task/list reply.
type ListTasksResponse struct {
	Success    bool                     `json:"success"`
	Tasks      []domain.TaskWithProject `json:"tasks"`
	TotalCount int                      `json:"total_count"`
	Limit      int                      `json:"limit"`
	Offset     int                      `json:"offset"`
	HasMore    bool                     `json:"has_more"`
}

// ErrorResponse is the generic failure body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
