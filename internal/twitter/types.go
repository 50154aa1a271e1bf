package twitter

import (
	"fmt"
	"time"
)

// Interaction is one interaction record reported by the collection
// service. Read-only to this service; never persisted locally.
type Interaction struct {
	InteractionID      string    `json:"interaction_id"`
	UserID             string    `json:"user_id"`
	Username           string    `json:"username"`
	AvatarURL          string    `json:"avatar_url"`
	InteractionType    string    `json:"interaction_type"`
	InteractionContent string    `json:"interaction_content"`
	InteractionTime    time.Time `json:"interaction_time"`
	PostID             string    `json:"post_id"`
	PostTime           time.Time `json:"post_time"`
}

// PaginationInfo describes one page of upstream results.
type PaginationInfo struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// InteractionPage is the upstream response for one interaction fetch.
type InteractionPage struct {
	MediaAccount string         `json:"media_account"`
	Username     string         `json:"username,omitempty"`
	Pagination   PaginationInfo `json:"pagination"`
	Interactions []Interaction  `json:"interactions"`
}

// InteractionQuery holds the filters for one interaction fetch.
// Page starts at 1; PerPage is capped at 100 upstream.
type InteractionQuery struct {
	Page      int
	PerPage   int
	Username  string
	UserID    string
	StartTime *time.Time
	EndTime   *time.Time
}

// SubscriptionMethod selects the subscription operation.
type SubscriptionMethod string

const (
	SubscriptionCreate SubscriptionMethod = "CREATE"
	SubscriptionUpdate SubscriptionMethod = "UPDATE"
	SubscriptionDelete SubscriptionMethod = "DELETE"
)

// SubscriptionResult reports the outcome of a subscription upsert.
// Failure is always reported here, never as an error: callers must
// check Success.
type SubscriptionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UpstreamError is returned when the interaction service answers with
// an error status.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("twitter service returned error: %d", e.Status)
}
