package twitter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	retweetKeyPrefix = "twitter:retweet:" // twitter:retweet:{account}:{user_id}:{post_id}
	retweetTTL       = 10 * time.Minute
)

// RetweetCache remembers verified retweets so repeated checks skip the
// upstream pagination walk. Only positive results are cached: a missing
// retweet can appear later.
type RetweetCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRetweetCache creates a cache over the given redis client.
func NewRetweetCache(client *redis.Client) *RetweetCache {
	return &RetweetCache{client: client, ttl: retweetTTL}
}

func retweetKey(account, userID, postID string) string {
	return fmt.Sprintf("%s%s:%s:%s", retweetKeyPrefix, account, userID, postID)
}

// Get reports whether a verified retweet is cached.
func (c *RetweetCache) Get(ctx context.Context, account, userID, postID string) (bool, error) {
	err := c.client.Get(ctx, retweetKey(account, userID, postID)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get retweet cache: %w", err)
	}
	return true, nil
}

// Set records a verified retweet.
func (c *RetweetCache) Set(ctx context.Context, account, userID, postID string) error {
	err := c.client.Set(ctx, retweetKey(account, userID, postID), "1", c.ttl).Err()
	if err != nil {
		return fmt.Errorf("set retweet cache: %w", err)
	}
	return nil
}
