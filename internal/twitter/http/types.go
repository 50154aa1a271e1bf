package http

// SubscriptionRequest is the body of POST|PUT|DELETE
// /twitter/subnet_tweet_task.
type SubscriptionRequest struct {
	MediaAccount    string `json:"media_account" binding:"required"`
	TweetID         string `json:"tweet_id" binding:"required"`
	UpdateFrequency string `json:"update_frequency"`
}

// RetweetCheckRequest is the body of POST /twitter/retweet-check.
type RetweetCheckRequest struct {
	MediaAccount string `json:"media_account" binding:"required"`
	XID          string `json:"x_id" binding:"required"`
	PostID       string `json:"post_id" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
}

// RetweetCheckResponse is the body of a POST /twitter/retweet-check
// reply.
type RetweetCheckResponse struct {
	HasRetweet bool   `json:"has_retweet"`
	Message    string `json:"message"`
}

// ErrorResponse is the generic failure body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
