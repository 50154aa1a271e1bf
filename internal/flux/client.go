package flux

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to the Flux reward ledger service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Flux client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RegisterTaskRequest carries the task registration payload.
type RegisterTaskRequest struct {
	UserWallet      string `json:"user_wallet"`
	ProjectName     string `json:"project_name"`
	ProjectIcon     string `json:"project_icon,omitempty"`
	Description     string `json:"description"`
	TwitterUsername string `json:"twitter_username"`
	TwitterLink     string `json:"twitter_link"`
	TweetID         string `json:"tweet_id"`
	TaskType        string `json:"task_type"`
}

// RegisterTaskResult reports the outcome of a registration. Failure is
// always reported here, never as an error: callers must check Success.
type RegisterTaskResult struct {
	Success  bool   `json:"success"`
	TaskID   string `json:"task_id,omitempty"`
	VLCValue *int64 `json:"vlc_value,omitempty"`
	Message  string `json:"message"`
}

// RegisterTask registers a reward-eligible task with the ledger.
// Upstream rejection and transport faults both come back through the
// result; transport faults are logged distinctly.
func (c *Client) RegisterTask(ctx context.Context, req RegisterTaskRequest) RegisterTaskResult {
	payload, err := json.Marshal(req)
	if err != nil {
		return RegisterTaskResult{Success: false, Message: fmt.Sprintf("encode task registration: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/task-creation/create", bytes.NewReader(payload))
	if err != nil {
		return RegisterTaskResult{Success: false, Message: fmt.Sprintf("create request: %v", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[warn] operation=register_task transport error: %v", err)
		return RegisterTaskResult{Success: false, Message: fmt.Sprintf("failed to connect to Flux service: %v", err)}
	}
	defer resp.Body.Close()

	var result RegisterTaskResult
	if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil {
		if resp.StatusCode >= 400 {
			return RegisterTaskResult{Success: false, Message: fmt.Sprintf("request failed with status %d", resp.StatusCode)}
		}
		return RegisterTaskResult{Success: false, Message: fmt.Sprintf("decode Flux response: %v", decodeErr)}
	}

	if resp.StatusCode >= 400 {
		result.Success = false
		if result.Message == "" {
			result.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return result
	}

	if result.Success && result.Message == "" {
		result.Message = "Task created successfully"
	}
	if !result.Success && result.Message == "" {
		result.Message = "Task creation failed"
	}
	return result
}
