package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// TimeFormat is the timestamp layout the collection service expects:
// seconds precision, UTC, literal Z suffix.
const TimeFormat = "2006-01-02T15:04:05Z"

// DefaultUpdateFrequency is sent for CREATE/UPDATE subscriptions when
// the caller does not specify one.
const DefaultUpdateFrequency = "10 minutes"

const defaultTimeout = 30 * time.Second

// Client talks to the Twitter interaction collection service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a collection service client. ratePerSec caps
// outbound request rate; zero or negative disables the cap.
func NewClient(baseURL string, timeout time.Duration, ratePerSec float64) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// FetchInteractions fetches one page of interactions for a media
// account. An upstream status >= 400 is returned as *UpstreamError;
// connection faults are returned wrapped.
func (c *Client) FetchInteractions(ctx context.Context, account string, q InteractionQuery) (*InteractionPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	u.Path = u.Path + "/api/interaction/" + url.PathEscape(account)

	params := u.Query()
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("per_page", strconv.Itoa(q.PerPage))
	if q.Username != "" {
		params.Set("username", q.Username)
	}
	if q.UserID != "" {
		params.Set("x_id", q.UserID)
	}
	if q.StartTime != nil {
		params.Set("start_time", q.StartTime.UTC().Format(TimeFormat))
	}
	if q.EndTime != nil {
		params.Set("end_time", q.EndTime.UTC().Format(TimeFormat))
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch interactions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var page InteractionPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode interactions: %w", err)
	}
	return &page, nil
}

type subscriptionRequest struct {
	MediaAccount    string `json:"media_account"`
	TweetID         string `json:"tweet_id"`
	UpdateFrequency string `json:"update_frequency,omitempty"`
}

// UpsertSubscription creates, updates, or deletes the monitoring
// subscription for (account, tweetID). It never returns an error:
// upstream rejection and transport faults are both reported through
// SubscriptionResult, so callers must check Success.
func (c *Client) UpsertSubscription(ctx context.Context, method SubscriptionMethod, account, tweetID, updateFrequency string) SubscriptionResult {
	body := subscriptionRequest{
		MediaAccount: account,
		TweetID:      tweetID,
	}

	var httpMethod string
	switch method {
	case SubscriptionCreate:
		httpMethod = http.MethodPost
	case SubscriptionUpdate:
		httpMethod = http.MethodPut
	case SubscriptionDelete:
		httpMethod = http.MethodDelete
	default:
		return SubscriptionResult{Success: false, Message: fmt.Sprintf("unknown subscription method: %s", method)}
	}

	// DELETE carries no frequency.
	if method != SubscriptionDelete {
		body.UpdateFrequency = updateFrequency
		if body.UpdateFrequency == "" {
			body.UpdateFrequency = DefaultUpdateFrequency
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return SubscriptionResult{Success: false, Message: fmt.Sprintf("encode subscription request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, c.baseURL+"/api/subnet_tweet_task", bytes.NewReader(payload))
	if err != nil {
		return SubscriptionResult{Success: false, Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[warn] operation=upsert_subscription transport error: %v", err)
		return SubscriptionResult{Success: false, Message: fmt.Sprintf("failed to reach twitter service: %v", err)}
	}
	defer resp.Body.Close()

	var result SubscriptionResult
	if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil {
		if resp.StatusCode >= 400 {
			return SubscriptionResult{Success: false, Message: fmt.Sprintf("subscription request failed with status %d", resp.StatusCode)}
		}
		return SubscriptionResult{Success: false, Message: fmt.Sprintf("decode subscription response: %v", decodeErr)}
	}

	if resp.StatusCode >= 400 && result.Message == "" {
		result.Message = fmt.Sprintf("subscription request failed with status %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		result.Success = false
	}
	return result
}
