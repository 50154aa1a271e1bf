package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetu-labs/hetu-middleware/internal/tasks/domain"
	"github.com/hetu-labs/hetu-middleware/internal/twitter"
)

type fakeService struct {
	createResult *domain.CreateTaskResult
	createErr    error
	listPage     *domain.TaskPage
	listErr      error
	listLimit    int
}

func (f *fakeService) CreateTask(ctx context.Context, req domain.CreateTaskRequest) (*domain.CreateTaskResult, error) {
	return f.createResult, f.createErr
}

func (f *fakeService) ListTasks(ctx context.Context, limit, offset int) (*domain.TaskPage, error) {
	f.listLimit = limit
	return f.listPage, f.listErr
}

func setupRouter(svc TaskService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCreateBody() map[string]any {
	return map[string]any{
		"project_name":     "demo",
		"task_type":        "retweet",
		"twitter_username": "hetu",
		"twitter_url":      "https://x.com/hetu/status/12345",
	}
}

func TestCreateTaskHandler(t *testing.T) {
	t.Run("success returns task id", func(t *testing.T) {
		vlc := int64(7)
		r := setupRouter(&fakeService{createResult: &domain.CreateTaskResult{
			TaskID:     11,
			FluxTaskID: "flux-42",
			VLCValue:   &vlc,
			Message:    "Successfully created project demo and associated task",
		}})

		w := postJSON(r, "/task/create", validCreateBody())
		require.Equal(t, http.StatusOK, w.Code)

		var resp CreateTaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "11", resp.TaskID)
		assert.Equal(t, "flux-42", resp.FluxTaskID)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		r := setupRouter(&fakeService{})
		w := postJSON(r, "/task/create", map[string]any{"project_name": "demo"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate project reports conflict message", func(t *testing.T) {
		r := setupRouter(&fakeService{createErr: fmt.Errorf("check project: %w", domain.ErrProjectExists)})
		w := postJSON(r, "/task/create", validCreateBody())
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Project demo already exists", resp.Message)
	})

	t.Run("invalid tweet URL is a bad request", func(t *testing.T) {
		r := setupRouter(&fakeService{createErr: fmt.Errorf("extract tweet id: %w", twitter.ErrInvalidTweetURL)})
		w := postJSON(r, "/task/create", validCreateBody())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream rejection is a bad gateway", func(t *testing.T) {
		r := setupRouter(&fakeService{createErr: fmt.Errorf("create subscription: interaction subscription failed: nope: %w", domain.ErrUpstreamRejected)})
		w := postJSON(r, "/task/create", validCreateBody())
		require.Equal(t, http.StatusBadGateway, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Message, "interaction subscription failed")
	})

	t.Run("unexpected faults are internal errors", func(t *testing.T) {
		r := setupRouter(&fakeService{createErr: fmt.Errorf("insert task: connection reset")})
		w := postJSON(r, "/task/create", validCreateBody())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListTasksHandler(t *testing.T) {
	t.Run("returns a page", func(t *testing.T) {
		r := setupRouter(&fakeService{listPage: &domain.TaskPage{
			Tasks:      []domain.TaskWithProject{{Task: domain.Task{ID: 1}, ProjectName: "demo"}},
			TotalCount: 5,
			Limit:      10,
			Offset:     0,
			HasMore:    false,
		}})

		w := postJSON(r, "/task/list", map[string]any{"limit": 10, "offset": 0})
		require.Equal(t, http.StatusOK, w.Code)

		var resp ListTasksResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 5, resp.TotalCount)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "demo", resp.Tasks[0].ProjectName)
	})

	t.Run("validation errors are bad requests", func(t *testing.T) {
		r := setupRouter(&fakeService{listErr: fmt.Errorf("%w: limit must be between 1 and 100", domain.ErrValidation)})
		w := postJSON(r, "/task/list", map[string]any{"limit": 101, "offset": 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty body gets the default limit", func(t *testing.T) {
		svc := &fakeService{listPage: &domain.TaskPage{Limit: 10}}
		r := setupRouter(svc)

		w := postJSON(r, "/task/list", map[string]any{})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 10, svc.listLimit)
	})
}
