package domain

import "time"

// Project is a named grouping entity that owns one or more tasks.
// Names are globally unique, enforced by the database.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedTime time.Time `json:"created_time"`
}

// Task is a unit of work tied to a social media account and post URL.
// A task is created in the same transaction as its project and never
// outlives a failed orchestration.
type Task struct {
	ID          int64     `json:"task_id"`
	ProjectID   int64     `json:"project_id"`
	TwitterName string    `json:"twitter_name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	UserWallet  string    `json:"user_wallet,omitempty"`
	CreatedTime time.Time `json:"created_time"`
}

// TaskWithProject is a task joined with its owning project, as returned
// by the paged list query.
type TaskWithProject struct {
	Task
	ProjectName string `json:"project_name"`
	ProjectIcon string `json:"project_icon,omitempty"`
}

// CreateTaskRequest carries everything the orchestrator needs for one
// create-task run.
type CreateTaskRequest struct {
	ProjectName        string
	ProjectDescription string
	ProjectIcon        string
	TaskType           string
	TwitterName        string
	TwitterURL         string
	Description        string
	UserWallet         string
}

// CreateTaskResult is the success outcome of an orchestration run.
type CreateTaskResult struct {
	TaskID     int64
	FluxTaskID string
	VLCValue   *int64
	Message    string
}

// TaskPage is one page of the task list.
type TaskPage struct {
	Tasks      []TaskWithProject
	TotalCount int
	Limit      int
	Offset     int
	HasMore    bool
}
