package twitter

import (
	"context"
	"log"
	"strings"
	"time"
)

const verifierPerPage = 100

// InteractionFetcher is the slice of the collection client the verifier
// needs.
type InteractionFetcher interface {
	FetchInteractions(ctx context.Context, account string, q InteractionQuery) (*InteractionPage, error)
}

// Verifier answers "did user X retweet post Y within [start, end]?" by
// walking interaction pages.
type Verifier struct {
	fetcher InteractionFetcher
	cache   *RetweetCache
}

// NewVerifier creates a verifier. cache may be nil.
func NewVerifier(fetcher InteractionFetcher, cache *RetweetCache) *Verifier {
	return &Verifier{fetcher: fetcher, cache: cache}
}

// HasRetweet pages through the user's interactions in the time window
// and returns true on the first retweet of postID. It stops fetching as
// soon as a match is found and propagates client failures unchanged.
func (v *Verifier) HasRetweet(ctx context.Context, account, userID, postID string, start, end time.Time) (bool, error) {
	if v.cache != nil {
		hit, err := v.cache.Get(ctx, account, userID, postID)
		if err != nil {
			// Cache trouble degrades to an upstream walk.
			log.Printf("[warn] operation=has_retweet cache read failed: %v", err)
		} else if hit {
			return true, nil
		}
	}

	for page := 1; ; page++ {
		result, err := v.fetcher.FetchInteractions(ctx, account, InteractionQuery{
			Page:      page,
			PerPage:   verifierPerPage,
			UserID:    userID,
			StartTime: &start,
			EndTime:   &end,
		})
		if err != nil {
			return false, err
		}

		for _, it := range result.Interactions {
			if strings.EqualFold(it.InteractionType, "retweet") && it.PostID == postID {
				if v.cache != nil {
					if err := v.cache.Set(ctx, account, userID, postID); err != nil {
						log.Printf("[warn] operation=has_retweet cache write failed: %v", err)
					}
				}
				return true, nil
			}
		}

		if !result.Pagination.HasNext {
			return false, nil
		}
	}
}
