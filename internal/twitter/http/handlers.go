package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hetu-labs/hetu-middleware/internal/twitter"
)

// InteractionClient is the slice of the collection client the handlers
// need.
type InteractionClient interface {
	FetchInteractions(ctx context.Context, account string, q twitter.InteractionQuery) (*twitter.InteractionPage, error)
	UpsertSubscription(ctx context.Context, method twitter.SubscriptionMethod, account, tweetID, updateFrequency string) twitter.SubscriptionResult
}

// RetweetVerifier answers retweet checks.
type RetweetVerifier interface {
	HasRetweet(ctx context.Context, account, userID, postID string, start, end time.Time) (bool, error)
}

// Handler serves the twitter endpoints.
type Handler struct {
	client   InteractionClient
	verifier RetweetVerifier
}

// NewHandler creates a twitter handler.
func NewHandler(client InteractionClient, verifier RetweetVerifier) *Handler {
	return &Handler{client: client, verifier: verifier}
}

// GetInteractions handles GET /twitter/:account/interactions.
func (h *Handler) GetInteractions(c *gin.Context) {
	account := c.Param("account")

	page, err := intQuery(c, "page", 1)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "page must be a positive integer"})
		return
	}
	perPage, err := intQuery(c, "per_page", 10)
	if err != nil || perPage < 1 || perPage > 100 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "per_page must be between 1 and 100"})
		return
	}

	q := twitter.InteractionQuery{
		Page:     page,
		PerPage:  perPage,
		Username: c.Query("username"),
		UserID:   c.Query("x_id"),
	}

	if raw := c.Query("start_time"); raw != "" {
		t, err := parseTimestamp(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "start_time must be an ISO-8601 timestamp"})
			return
		}
		q.StartTime = &t
	}
	if raw := c.Query("end_time"); raw != "" {
		t, err := parseTimestamp(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "end_time must be an ISO-8601 timestamp"})
			return
		}
		q.EndTime = &t
	}

	result, err := h.client.FetchInteractions(c.Request.Context(), account, q)
	if err != nil {
		var upstream *twitter.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(upstream.Status, ErrorResponse{Success: false, Message: upstream.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: "failed to fetch Twitter interactions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpsertSubscription handles POST|PUT|DELETE /twitter/subnet_tweet_task.
// The subscription result is always reported in the body; callers check
// the success flag.
func (h *Handler) UpsertSubscription(c *gin.Context) {
	var body SubscriptionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid request body: " + err.Error()})
		return
	}

	var method twitter.SubscriptionMethod
	switch c.Request.Method {
	case http.MethodPost:
		method = twitter.SubscriptionCreate
	case http.MethodPut:
		method = twitter.SubscriptionUpdate
	case http.MethodDelete:
		method = twitter.SubscriptionDelete
	}

	result := h.client.UpsertSubscription(c.Request.Context(), method, body.MediaAccount, body.TweetID, body.UpdateFrequency)
	c.JSON(http.StatusOK, result)
}

// RetweetCheck handles POST /twitter/retweet-check.
func (h *Handler) RetweetCheck(c *gin.Context) {
	var body RetweetCheckRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid request body: " + err.Error()})
		return
	}

	start, err := parseTimestamp(body.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "start_time must be an ISO-8601 timestamp"})
		return
	}
	end, err := parseTimestamp(body.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "end_time must be an ISO-8601 timestamp"})
		return
	}

	has, err := h.verifier.HasRetweet(c.Request.Context(), body.MediaAccount, body.XID, body.PostID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, RetweetCheckResponse{HasRetweet: false, Message: "retweet check failed: " + err.Error()})
		return
	}

	message := "no retweet found"
	if has {
		message = "retweet found"
	}
	c.JSON(http.StatusOK, RetweetCheckResponse{HasRetweet: has, Message: message})
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	// Accept the upstream's own seconds-precision layout too.
	return time.Parse(twitter.TimeFormat, raw)
}

// RegisterRoutes mounts the twitter endpoints on the given router group.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/twitter/:account/interactions", h.GetInteractions)
	r.POST("/twitter/subnet_tweet_task", h.UpsertSubscription)
	r.PUT("/twitter/subnet_tweet_task", h.UpsertSubscription)
	r.DELETE("/twitter/subnet_tweet_task", h.UpsertSubscription)
	r.POST("/twitter/retweet-check", h.RetweetCheck)
}
