package twitter

import (
	"errors"
	"strings"
)

// ErrInvalidTweetURL signals a post URL whose trailing path segment is
// not a numeric tweet id.
var ErrInvalidTweetURL = errors.New("invalid Twitter URL format, expected https://x.com/username/status/tweet_id")

// ExtractTweetID returns the trailing path segment of a tweet URL. It
// succeeds only if that segment consists entirely of decimal digits.
func ExtractTweetID(tweetURL string) (string, error) {
	segments := strings.Split(tweetURL, "/")
	id := segments[len(segments)-1]

	if id == "" {
		return "", ErrInvalidTweetURL
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", ErrInvalidTweetURL
		}
	}
	return id, nil
}
