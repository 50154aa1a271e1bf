package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hetu-labs/hetu-middleware/internal/tasks/domain"
	"github.com/hetu-labs/hetu-middleware/internal/twitter"
)

const defaultListLimit = 10

// TaskService is the slice of the task service the handlers need.
type TaskService interface {
	CreateTask(ctx context.Context, req domain.CreateTaskRequest) (*domain.CreateTaskResult, error)
	ListTasks(ctx context.Context, limit, offset int) (*domain.TaskPage, error)
}

// Handler serves the task endpoints.
type Handler struct {
	service TaskService
}

// NewHandler creates a task handler.
func NewHandler(service TaskService) *Handler {
	return &Handler{service: service}
}

// CreateTask handles POST /task/create.
func (h *Handler) CreateTask(c *gin.Context) {
	var body CreateTaskRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid request body: " + err.Error()})
		return
	}

	result, err := h.service.CreateTask(c.Request.Context(), domain.CreateTaskRequest{
		ProjectName:        body.ProjectName,
		ProjectDescription: body.ProjectDescription,
		ProjectIcon:        body.ProjectIcon,
		TaskType:           body.TaskType,
		TwitterName:        body.TwitterUsername,
		TwitterURL:         body.TwitterURL,
		Description:        body.Description,
		UserWallet:         body.UserWallet,
	})
	if err != nil {
		status, message := createTaskError(body.ProjectName, err)
		c.JSON(status, ErrorResponse{Success: false, Message: message})
		return
	}

	c.JSON(http.StatusOK, CreateTaskResponse{
		Success:    true,
		Message:    result.Message,
		TaskID:     strconv.FormatInt(result.TaskID, 10),
		FluxTaskID: result.FluxTaskID,
		VLCValue:   result.VLCValue,
	})
}

// ListTasks handles POST /task/list.
func (h *Handler) ListTasks(c *gin.Context) {
	var body ListTasksRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid request body: " + err.Error()})
		return
	}

	if body.Limit == 0 {
		body.Limit = defaultListLimit
	}

	page, err := h.service.ListTasks(c.Request.Context(), body.Limit, body.Offset)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: "failed to list tasks: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, ListTasksResponse{
		Success:    true,
		Tasks:      page.Tasks,
		TotalCount: page.TotalCount,
		Limit:      page.Limit,
		Offset:     page.Offset,
		HasMore:    page.HasMore,
	})
}

func createTaskError(projectName string, err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProjectExists):
		return http.StatusBadRequest, "Project " + projectName + " already exists"
	case errors.Is(err, twitter.ErrInvalidTweetURL):
		return http.StatusBadRequest, twitter.ErrInvalidTweetURL.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUpstreamRejected):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, "Failed to create task: " + err.Error()
	}
}

// RegisterRoutes mounts the task endpoints on the given router group.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/task/create", h.CreateTask)
	r.POST("/task/list", h.ListTasks)
}
